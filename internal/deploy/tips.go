package deploy

import (
	"fmt"
	"io"

	"github.com/unkn0wn-root/cratepack/internal/errdef"
	"github.com/unkn0wn-root/cratepack/internal/prompt"
)

// emitTips offers the mode specific publishing hints.
func emitTips(p prompt.Prompter, m Mode, out io.Writer) (bool, error) {
	show, err := p.Confirm(labelTips, true)
	if err != nil {
		return false, errdef.Wrap(errdef.CodePrompt, err, "tips")
	}
	if !show {
		return false, nil
	}
	if _, err := fmt.Fprint(out, "\n"+tipsFor(m)); err != nil {
		return true, fmt.Errorf("deploy: write tips: %w", err)
	}
	return true, nil
}
