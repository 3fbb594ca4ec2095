package state

// RuleID names a narration directive that can be switched on or off.
type RuleID string

const (
	RuleShowDontTell RuleID = "showDontTell"
	RuleLivingWorld  RuleID = "livingWorld"
	RuleProactiveNPC RuleID = "proactiveNpc"
	RuleRumorMill    RuleID = "rumorMill"
)

// RuleOrder is the declaration order of narration rules.
// Rendered rule blocks always follow this order.
var RuleOrder = []RuleID{
	RuleShowDontTell,
	RuleLivingWorld,
	RuleProactiveNPC,
	RuleRumorMill,
}

// RuleToggleConfig maps a rule to whether its block is included.
// Missing keys are treated as off.
type RuleToggleConfig map[RuleID]bool

// DefaultRuleToggles enables every narration rule.
func DefaultRuleToggles() RuleToggleConfig {
	rtc := make(RuleToggleConfig, len(RuleOrder))
	for _, id := range RuleOrder {
		rtc[id] = true
	}
	return rtc
}

// IsKnownRule reports whether id is one of the declared rules.
func IsKnownRule(id RuleID) bool {
	for _, known := range RuleOrder {
		if id == known {
			return true
		}
	}
	return false
}

// Enabled returns the enabled rules in declaration order.
func (rtc RuleToggleConfig) Enabled() []RuleID {
	var enabled []RuleID
	for _, id := range RuleOrder {
		if rtc[id] {
			enabled = append(enabled, id)
		}
	}
	return enabled
}
