package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"partialdate/calendar"
	"partialdate/config"
	"partialdate/isodate"
	"partialdate/log"
	pdmiddleware "partialdate/middleware"
	"partialdate/oops"
	"partialdate/routes"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "partialdate",
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
	rootCmd.AddCommand(newParseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(pdmiddleware.Logger)
	r.Use(pdmiddleware.Recoverer)
	r.Get("/health", routes.Health)
	r.Post("/v1/parse", routes.ParseDate)
	return r
}

func runServer() {
	r := newRouter()
	addr := fmt.Sprintf(":%d", config.Cfg.Port)
	log.Info().Str("addr", addr).Msg("listening")
	err := http.ListenAndServe(addr, r)
	log.Fatal().Err(err).Msg("server exited")
}

func newParseCmd() *cobra.Command {
	var todayStr string
	cmd := &cobra.Command{
		Use:   "parse STRING...",
		Short: "Parse date strings and print one JSON line per input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := calendar.NewSystem()
			if todayStr != "" {
				t, err := time.Parse("2006-01-02", todayStr)
				if err != nil {
					return oops.Wrapf(err, "bad --today value %q", todayStr)
				}
				cal = calendar.NewSystemAt(calendar.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()})
			}
			parser := isodate.NewParser(cal)

			anyFailed := false
			for _, arg := range args {
				line := map[string]any{"input": arg}
				result, err := parser.Parse(arg)
				if err != nil {
					line["error"] = oops.Message(err)
					anyFailed = true
				} else {
					line["date"] = result.Date
					line["missing"] = result.Missing
				}
				bytes, err := json.Marshal(line)
				if err != nil {
					return oops.Wrap(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
			}
			if anyFailed {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return oops.New("some inputs did not parse")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&todayStr, "today", "", "processing date as YYYY-MM-DD (defaults to the current UTC date)")
	return cmd
}
