package cli

import (
	"github.com/Adamcf123/OpenSpec/internal/config"
	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/output"
	"github.com/Adamcf123/OpenSpec/internal/platform"
)

// integrationOptions builds tool options from the environment. locale may be
// empty to defer to the project's recorded locale.
func integrationOptions(locale string) (integrations.Options, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return integrations.Options{}, err
	}
	if locale == "" {
		locale = env.Locale
	}
	return integrations.Options{
		Locale:    locale,
		CodexHome: env.CodexHomeDir(),
	}, nil
}

// withDryRun routes writes into an in-memory overlay when enabled. The
// returned report func prints what would have been written.
func withDryRun(opts integrations.Options, enabled bool) (integrations.Options, func(*output.Printer)) {
	if !enabled {
		return opts, func(*output.Printer) {}
	}
	overlay := platform.NewOverlay(platform.OS{})
	opts.FS = overlay
	return opts, func(p *output.Printer) { p.DryRun(overlay.Written()) }
}
