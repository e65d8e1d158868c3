package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/app"
	"github.com/intervue-ai/intervue/internal/config"
	"github.com/intervue-ai/intervue/internal/state"
	"github.com/intervue-ai/intervue/internal/store"
)

// runApp opens the store, loads persisted state, builds dependencies, and
// launches the TUI. The state load completes before the UI starts so the
// first frame already reflects any interrupted interview.
func runApp(cmd *cobra.Command, dashboard bool) error {
	ctx := cmd.Context()

	cfg := config.Load()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.APIURL = u
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	records := st.Records()

	loaded, err := state.Load(ctx, records)
	if err != nil {
		return fmt.Errorf("load persisted state: %w", err)
	}

	persistor := state.NewPersistor(records)
	dispatcher := state.NewDispatcher(loaded)
	dispatcher.Subscribe(persistor.Subscriber())

	return app.Run(app.Options{
		Dispatcher: dispatcher,
		Backend:    api.New(cfg.APIURL, records),
		Records:    records,
		Persistor:  persistor,
		Config:     cfg,
		Dashboard:  dashboard,
	})
}
