package demo

import (
	"fmt"

	"github.com/termbridge-labs/termbridge/internal/registry"
)

// Register adds every demo command to the registry. It is called once at
// process startup, before any invocation; the registry is read-only after.
func Register(reg *registry.Registry) error {
	descriptors := []*registry.Descriptor{
		helloCmd(),
		sumNumbersCmd(),
		listItemsCmd(),
		listTagsCmd(),
		chooseTagsCmd(),
		saveSettingsCmd(),
		listItemsSlowCmd(),
		simulateProgressCmd(),
		testParamsCmd(),
		listProjectsCmd(),
		listTasksCmd(),
		taskDetailCmd(),
		validateTextCmd(),
		renderMarkdownCmd(),
		showShortcutsCmd(),
		streamLogsCmd(),
		listMixedWidgetsCmd(),
		listLargeCmd(),
	}
	for _, d := range descriptors {
		if err := reg.Register(d); err != nil {
			return fmt.Errorf("registering demo commands: %w", err)
		}
	}
	return nil
}
