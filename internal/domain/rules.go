package domain

import (
	"fmt"

	"github.com/spf13/viper"
)

// RuleSet is the data table behind the classifier heuristics. Every
// exclusion list lives here rather than inline so the classifier can be
// unit-tested against a fixed table and deployments can override entries
// without a rebuild.
type RuleSet struct {
	// PlaceholderToken replaces each interpolated expression in the
	// normalized text.
	PlaceholderToken string `mapstructure:"placeholder_token"`

	// TargetScripts names unicode scripts; a literal containing no rune
	// from any of them is excluded.
	TargetScripts []string `mapstructure:"target_scripts"`

	// LocalizationFuncs lists callee names whose first argument is
	// user-facing text to translate.
	LocalizationFuncs []string `mapstructure:"localization_funcs"`

	// ReverseDomainPrefixes mark bundle identifiers, not UI text.
	ReverseDomainPrefixes []string `mapstructure:"reverse_domain_prefixes"`

	// AssetSuffixes mark binary-asset references (image names etc).
	AssetSuffixes []string `mapstructure:"asset_suffixes"`

	// PathPatterns are regular expressions matching filesystem-path-shaped
	// strings.
	PathPatterns []string `mapstructure:"path_patterns"`

	// LogMethods are method names whose presence in a rendered call marks
	// it as logging (receiver.debug(...) and friends).
	LogMethods []string `mapstructure:"log_methods"`

	// LogFuncs are bare diagnostic-print function names.
	LogFuncs []string `mapstructure:"log_funcs"`

	// LoggerMembers are member names whose access chain marks a logger
	// (logger.x, self.logger.x).
	LoggerMembers []string `mapstructure:"logger_members"`

	// LogLineSubstrings is the blanket fallback: a source line containing
	// any of these (case-insensitive) is treated as logging.
	LogLineSubstrings []string `mapstructure:"log_line_substrings"`

	// EntryFileNames are application-entry-point file base names subject
	// to the EntryFileLogTexts override.
	EntryFileNames []string `mapstructure:"entry_file_names"`

	// EntryFileLogTexts are known log-message substrings excluded
	// unconditionally inside entry-point files.
	EntryFileLogTexts []string `mapstructure:"entry_file_log_texts"`

	// PolicyLengthThreshold is the rune count above which policy-keyword
	// text gets the PolicyMarker prefix instead of normal handling.
	PolicyLengthThreshold int `mapstructure:"policy_length_threshold"`

	// PolicyKeywords flag privacy/consent blocks.
	PolicyKeywords []string `mapstructure:"policy_keywords"`

	// PolicyMarker is prefixed onto oversized policy text; it tags the
	// record for separate downstream handling, it does not drop it.
	PolicyMarker string `mapstructure:"policy_marker"`
}

// DefaultRuleSet returns the built-in rule table targeting untranslated
// CJK strings in Swift projects.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		PlaceholderToken:  "%@",
		TargetScripts:     []string{"Han"},
		LocalizationFuncs: []string{"NSLocalizedString"},
		ReverseDomainPrefixes: []string{
			"com.", "org.", "net.", "io.",
		},
		AssetSuffixes: []string{
			".png", ".jpg", ".jpeg", ".gif", ".webp", ".heic", ".svg", ".pdf",
		},
		PathPatterns: []string{
			`^/`,
			`/$`,
			`^\.{1,2}/`,
			`^[A-Za-z0-9_\-.]+(/[A-Za-z0-9_\-.]+)+$`,
		},
		LogMethods: []string{
			"debug", "info", "warning", "error", "critical",
		},
		LogFuncs: []string{
			"print", "NSLog", "debugPrint", "dump", "os_log",
		},
		LoggerMembers: []string{"logger", "log"},
		LogLineSubstrings: []string{
			"logger", " log", "debug", "info", "warning", "error",
		},
		EntryFileNames: []string{"AppDelegate.swift", "main.swift"},
		EntryFileLogTexts: []string{
			"启动完成", "初始化完成", "注册成功",
		},
		PolicyLengthThreshold: 100,
		PolicyKeywords: []string{
			"隐私", "政策", "协议", "条款", "同意",
		},
		PolicyMarker: "[POLICY_TEXT] ",
	}
}

// LoadRuleSet reads rule overrides from the given config file, merged over
// the defaults. An empty path returns the defaults unchanged.
func LoadRuleSet(path string) (RuleSet, error) {
	rules := DefaultRuleSet()

	if path == "" {
		return rules, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return RuleSet{}, fmt.Errorf("read rules config: %w", err)
	}

	if err := v.Unmarshal(&rules); err != nil {
		return RuleSet{}, fmt.Errorf("unmarshal rules config: %w", err)
	}

	return rules, nil
}
