package style

import "os"

// Common field names.
const (
	FieldUser           = "user"
	FieldHostname       = "hostname"
	FieldUserAtHost     = "user_at_host"
	FieldLocaltime      = "localtime"
	FieldEnvName        = "env_name"
	FieldFullEnvName    = "full_env_name"
	FieldCurrentJob     = "current_job"
	FieldBackgroundJobs = "background_jobs"
	FieldRetCode        = "ret_code"
	FieldGitStatus      = "gitstatus"
	FieldCwd            = "cwd"
	FieldPromptEnd      = "prompt_end"
)

// PartSeparator joins the sub-parts of composite field values such as
// gitstatus or full_env_name.
const PartSeparator = "\x00"

// DefaultPalette returns the stock field styles.
func DefaultPalette() *Palette {
	p := NewPalette()
	for _, d := range []struct {
		field string
		bg    string
	}{
		{FieldUser, Sand},
		{FieldHostname, Blue},
		{FieldUserAtHost, Violet},
		{FieldLocaltime, Sand},
		{FieldEnvName, Emerald},
		{FieldFullEnvName, Emerald},
		{FieldCurrentJob, Rose},
		{FieldBackgroundJobs, Serene},
		{FieldRetCode, Red},
		{FieldGitStatus, Green},
		{FieldCwd, Cyan},
		{FieldPromptEnd, ""},
	} {
		p.Register(d.field, FieldStyle{Background: d.bg})
	}

	p.SetSeparator(FieldCwd, string(os.PathSeparator))
	p.SetSeparator(FieldGitStatus, PartSeparator)
	p.SetSeparator(FieldFullEnvName, PartSeparator)
	return p
}
