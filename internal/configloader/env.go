package configloader

import "os"

// Environment variables recognized by the loader.
const (
	// EnvConfig points at an explicit config file, like --config.
	EnvConfig = "MDLCONF_CONFIG"

	// EnvUnknownRules selects the unknown-rule policy: "warn" or "error".
	EnvUnknownRules = "MDLCONF_UNKNOWN_RULES"
)

// envPolicy applies the MDLCONF_UNKNOWN_RULES override, if set.
// Unrecognized values leave the policy unchanged.
func envPolicy(fallback UnknownRulePolicy) UnknownRulePolicy {
	switch os.Getenv(EnvUnknownRules) {
	case "error", "strict":
		return UnknownRuleError
	case "warn":
		return UnknownRuleWarn
	default:
		return fallback
	}
}

// ListEnvVars returns the supported environment variables and their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		EnvConfig:       "Path to an explicit config file (like --config)",
		EnvUnknownRules: "Unknown rule code policy: warn or error",
	}
}
