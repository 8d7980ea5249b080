package cfgm_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/cfgm"
)

// Example_loadMap 演示加载套件配置。
func Example_loadMap() {
	dir, _ := os.MkdirTemp("", "cfgm-example")
	defer func() { _ = os.RemoveAll(dir) }()

	_ = os.WriteFile(filepath.Join(dir, "suite.yaml"), []byte("db:\n  host: ${EXAMPLE_DB_HOST:-localhost}\n"), 0o600)

	settings, err := cfgm.LoadMap(
		cfgm.WithBaseDir(dir),
		cfgm.WithConfigPaths("suite.yaml"),
	)
	if err != nil {
		fmt.Println("加载失败:", err)

		return
	}

	fmt.Println(settings["db"])

	// Output:
	// map[host:localhost]
}
