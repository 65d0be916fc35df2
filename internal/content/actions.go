package content

// ActionKind identifies which host handler an action targets.
type ActionKind int

const (
	ActionMail ActionKind = iota
	ActionWeb
)

func (k ActionKind) String() string {
	switch k {
	case ActionMail:
		return "mail"
	case ActionWeb:
		return "web"
	default:
		return "unknown"
	}
}

// Action is an external affordance on the home screen.
// Key is the single-key shortcut used by the terminal shell.
type Action struct {
	Kind   ActionKind
	Label  string
	Key    string
	Target string
}

// Fixed external targets. These strings must not change.
const (
	MailTarget     = "mailto:tyagiashish056@gmail.com"
	LinkedInTarget = "https://www.linkedin.com/in/ashish-tyagi-9a875292"
	GitHubTarget   = "https://github.com"
)

var actions = []Action{
	{Kind: ActionMail, Label: "Email", Key: "m", Target: MailTarget},
	{Kind: ActionWeb, Label: "LinkedIn", Key: "l", Target: LinkedInTarget},
	{Kind: ActionWeb, Label: "GitHub", Key: "g", Target: GitHubTarget},
}

// Actions returns the home screen actions in display order.
func Actions() []Action {
	return append([]Action(nil), actions...)
}

// ActionByKey returns the action bound to the given shortcut key.
func ActionByKey(key string) (Action, bool) {
	for _, a := range actions {
		if a.Key == key {
			return a, true
		}
	}
	return Action{}, false
}
