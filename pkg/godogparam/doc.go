// Package godogparam 将 gherkinparam 接入 github.com/cucumber/godog。
//
// 套件开始时加载 settings，步骤开始前改写步骤参数：
//
//	plugin := godogparam.New(
//	    godogparam.WithFixtures(fixtures),
//	    godogparam.WithSettingsFrom(cfgm.WithConfigPaths("features/suite.yaml")),
//	)
//
//	suite := godog.TestSuite{
//	    TestSuiteInitializer: plugin.InitializeTestSuite,
//	    ScenarioInitializer: func(ctx *godog.ScenarioContext) {
//	        plugin.InitializeScenario(ctx)
//	        ctx.Step(`^I log in as "([^"]*)"$`, plugin.Step(iLogInAs))
//	    },
//	}
//
// godog 在 before-step hook 之前就已从步骤文本中提取字符串参数，
// 因此字符串参数需要通过 [Plugin.Step] 包装的步骤函数解析；
// 表格与 DocString 由 hook 原地改写，无需包装。
package godogparam
