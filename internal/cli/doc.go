// Package cli implements the rcmd command-line interface.
//
// Every command loads the same application state through loadApp: the config
// file (or defaults), parameter flag overrides, the template catalog and the
// clipboard backend. Commands then either render templates, copy one, or hand
// everything to the interactive builder.
//
// # Command Structure
//
//	rcmd                  - Interactive command builder (TUI)
//	rcmd list             - Print every rendered command
//	rcmd show <key>       - Print one rendered command
//	rcmd copy <key>       - Copy one rendered command to the clipboard
//	rcmd set <field> <v>  - Save a parameter to the config file
//	rcmd init             - Create .rcmd.yaml
//	rcmd doctor           - Diagnose config, clipboard and rclone
//	rcmd completion       - Shell completion scripts
//	rcmd version          - Build information
//
// # Output
//
// Human output is styled with lipgloss; --no-color or output.color: never
// turns styling off. Commands that take --json write a JSONEnvelope so
// scripts get the same shape for success and failure.
package cli
