package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallTextPredicate(t *testing.T) {
	pred := CallTextPredicate(DefaultRuleSet())

	tests := []struct {
		name string
		ctx  LiteralContext
		want bool
	}{
		{
			name: "logger method call",
			ctx: LiteralContext{
				InCall:   true,
				CallText: `logger.info("启动完成")`,
				ArgCount: 1,
			},
			want: true,
		},
		{
			name: "self qualified logger",
			ctx: LiteralContext{
				InCall:   true,
				CallText: `self.logger.error("失败")`,
				ArgCount: 1,
			},
			want: true,
		},
		{
			name: "bare log call",
			ctx: LiteralContext{
				InCall:   true,
				CallText: `log("细节")`,
				ArgCount: 1,
			},
			want: true,
		},
		{
			name: "not sole argument",
			ctx: LiteralContext{
				InCall:   true,
				CallText: `logger.info("启动完成", metadata)`,
				ArgCount: 2,
			},
			want: false,
		},
		{
			name: "not a call",
			ctx: LiteralContext{
				CallText: "",
			},
			want: false,
		},
		{
			name: "dialog member is not a logger",
			ctx: LiteralContext{
				InCall:   true,
				CallText: `dialog.show("提示")`,
				ArgCount: 1,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pred("", tt.ctx))
		})
	}
}

func TestDiagnosticCalleePredicate(t *testing.T) {
	pred := DiagnosticCalleePredicate(DefaultRuleSet())

	assert.True(t, pred("", LiteralContext{InCall: true, CalleeName: "print", ArgCount: 1}))
	assert.True(t, pred("", LiteralContext{InCall: true, CalleeName: "NSLog", ArgCount: 1}))
	assert.False(t, pred("", LiteralContext{InCall: true, CalleeName: "printReceipt", ArgCount: 1}))
	assert.False(t, pred("", LiteralContext{InCall: true, CalleeName: "print", ArgCount: 2}))
}

func TestLineSubstringPredicate(t *testing.T) {
	pred := LineSubstringPredicate(DefaultRuleSet())

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"logger variable", `        logger.record("x")`, true},
		{"debug word", `    if isDebugBuild { banner("调试") }`, true},
		{"case insensitive", `    Logger.shared.send("y")`, true},
		{"plain ui line", `    showBanner("操作成功")`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pred("", LiteralContext{LineText: tt.line}))
		})
	}
}

func TestEntryFilePredicate(t *testing.T) {
	pred := EntryFilePredicate(DefaultRuleSet())

	assert.True(t, pred("应用启动完成", LiteralContext{File: "AppDelegate.swift"}))
	assert.False(t, pred("应用启动完成", LiteralContext{File: "SettingsView.swift"}))
	assert.False(t, pred("欢迎使用", LiteralContext{File: "AppDelegate.swift"}))
}

func TestWithLogPredicatesReplacesDefaults(t *testing.T) {
	never := func(string, LiteralContext) bool { return false }

	c, err := NewClassifier(DefaultRuleSet(), WithLogPredicates(never))
	assert.NoError(t, err)

	// With the blanket line heuristic gone, a UI string on a line that
	// merely mentions "error" survives.
	verdict := c.Classify(plainLiteral("网络错误，请重试"), LiteralContext{
		LineText: `    showErrorBanner("网络错误，请重试")`,
		ArgIndex: -1,
	})
	assert.True(t, verdict.Include)
}
