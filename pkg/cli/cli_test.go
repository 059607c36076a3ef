package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/pkg/cli"
)

func TestRunHelp(t *testing.T) {
	for _, cmd := range []string{"serve", "import", "notify", "view"} {
		t.Run(cmd, func(t *testing.T) {
			gt.NoError(t, cli.Run(context.Background(), []string{"embiscope", cmd, "--help"}))
		})
	}
}

func TestRunImportRequirements(t *testing.T) {
	ctx := context.Background()

	t.Run("CSV is required", func(t *testing.T) {
		gt.Error(t, cli.Run(ctx, []string{"embiscope", "import"}))
	})

	t.Run("Firestore project is required", func(t *testing.T) {
		t.Setenv("EMBISCOPE_FIRESTORE_PROJECT", "")
		gt.Error(t, cli.Run(ctx, []string{"embiscope", "import", "--csv", "testdata/missing.csv"}))
	})
}
