package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/pincheck-dev/pincheck/refs/heads/main/json-schema/pincheck.json
# pincheck - https://github.com/pincheck-dev/pincheck
version: 1
# files:
#   - pattern: ^\.github/workflows/.*\.ya?ml$
#   - pattern: ^action\.ya?ml$

allow_actions:
# - actions/checkout@v4
# - my-org/internal-action@main
`
	filePermission os.FileMode = 0o644
)

// Init creates a new pincheck configuration file if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
