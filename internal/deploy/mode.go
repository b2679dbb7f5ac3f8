package deploy

// Mode selects which packaging artifacts a run emits.
type Mode string

const (
	ModeGit Mode = "git"
	ModeAur Mode = "aur"
)

// ParseMode accepts exactly "git" or "aur".
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeGit, ModeAur:
		return m, true
	default:
		return "", false
	}
}

func (m Mode) Valid() bool {
	_, ok := ParseMode(string(m))
	return ok
}
