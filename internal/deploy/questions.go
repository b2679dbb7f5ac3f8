package deploy

import (
	"github.com/unkn0wn-root/cratepack/internal/errdef"
	"github.com/unkn0wn-root/cratepack/internal/prompt"
)

// Ask runs the fixed question script. Nothing is touched on disk, so a
// failed prompt leaves no trace.
func Ask(p prompt.Prompter) (Answers, error) {
	var a Answers

	name, err := p.Input(labelFolder, prompt.InputOpt{Validate: ValidateFolderName})
	if err != nil {
		return Answers{}, errdef.Wrap(errdef.CodePrompt, err, "folder name")
	}
	a.FolderName = name

	if a.AddLicense, err = p.Confirm(labelLicense, true); err != nil {
		return Answers{}, errdef.Wrap(errdef.CodePrompt, err, "license")
	}

	more, err := p.Confirm(labelExtras, false)
	if err != nil {
		return Answers{}, errdef.Wrap(errdef.CodePrompt, err, "extras")
	}
	if !more {
		return a, nil
	}

	list, err := p.Input(labelExtraList, prompt.InputOpt{AllowEmpty: true})
	if err != nil {
		return Answers{}, errdef.Wrap(errdef.CodePrompt, err, "extra names")
	}
	a.Extras = SplitExtras(list)
	return a, nil
}
