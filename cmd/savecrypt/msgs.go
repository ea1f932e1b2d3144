package savecrypt

// Command descriptions
const (
	MsgRootUse   = "savecrypt <file.yaml|file.sav>"
	MsgRootShort = "Encrypt and decrypt game save files"
	MsgRootLong  = `savecrypt converts a save file between its editable and encrypted forms.

Pass a .yaml file to encrypt it into a .sav file next to it, or a .sav file to
decrypt it into a .yaml file. The identity used for the conversion is read from
STEAMID.txt in the program directory. When encrypting would replace an existing
.sav file you are asked whether to overwrite it, save under a new name, or
cancel.`

	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat        = "Prompt style: auto, term or text (overrides ui.format)"
	MsgFlagDefaultConfig = "Print the built-in configuration and exit"
)

// Error messages
const (
	MsgErrConfig = "Failed to load configuration: %s"
	MsgErrPaths  = "Failed to locate program directory: %s"
	MsgErrFormat = "Invalid output format: %s"
)

// MsgUsageTemplate is the usage template for the root command
const MsgUsageTemplate = `{{bold "USAGE:"}}
  {{.UseLine}}

{{bold "FLAGS:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`
