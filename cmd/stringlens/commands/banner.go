package commands

import (
	"fmt"

	"github.com/solset/stringlens/logger"
	"github.com/solset/stringlens/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(verbosity int, dbPath string) {
	cyan := "\033[36m"
	green := "\033[32m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	fmt.Printf("\n%s%s", cyan, bold)
	fmt.Printf("   ╔══════════════════════════════════════╗\n")
	fmt.Printf("   ║            s t r i n g l e n s       ║\n")
	fmt.Printf("   ║   analyze · store · filter · query   ║\n")
	fmt.Printf("   ╚══════════════════════════════════════╝%s\n\n", reset)

	fmt.Printf("%s%s┌─ stringlens Info ───────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version:   %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Built:     %s\n", green, reset, versionInfo.BuildTime)
	fmt.Printf("%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	if dbPath != "" {
		fmt.Printf("%s│%s Database:  %s\n", green, reset, dbPath)
	}
	fmt.Printf("%s└─────────────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
