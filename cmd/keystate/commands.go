package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flone-dnb/system-wide-key-state/config"
	"github.com/Flone-dnb/system-wide-key-state/keycode"
	"github.com/Flone-dnb/system-wide-key-state/platform"
	"github.com/Flone-dnb/system-wide-key-state/storage"
	"github.com/Flone-dnb/system-wide-key-state/web"
)

var errWebDisabled = errors.New("web server is disabled, set enabled = true under [web] in the config")

// app carries state shared by all subcommands
type app struct {
	configPath string
	logLevel   *slog.LevelVar
	cfg        *config.Config
}

func newRootCmd(logLevel *slog.LevelVar) *cobra.Command {
	a := &app{logLevel: logLevel}

	root := &cobra.Command{
		Use:           "keystate",
		Short:         "Query the system wide state of keyboard keys and mouse buttons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.toml (default: user config directory)")

	root.AddCommand(
		a.newQueryCmd(),
		a.newNamesCmd(),
		a.newServeCmd(),
		a.newHistoryCmd(),
		a.newStatsCmd(),
	)
	return root
}

func (a *app) loadConfig() error {
	if a.configPath == "" {
		path, err := config.Path()
		if err != nil {
			return err
		}
		a.configPath = path
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.logLevel.Set(level)
	a.cfg = cfg

	slog.Debug("Configuration loaded", "path", a.configPath, "platform", runtime.GOOS, "supported", platform.Supported)
	return nil
}

// openDB opens the sample database when recording is requested
func (a *app) openDB(force bool) (*storage.DB, error) {
	if !force && !a.cfg.Storage.Enabled {
		return nil, nil
	}

	dir, err := a.cfg.StorageDir()
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(dir)
	if err != nil {
		return nil, err
	}
	slog.Debug("Recording samples", "dir", dir)
	return db, nil
}

func (a *app) newQueryCmd() *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "query [key...]",
		Short: "Print whether each key is pressed right now",
		Long:  "Print whether each key is pressed right now. Without arguments the keys listed under [query] in the config are used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := a.resolveKeys(args)
			if err != nil {
				return err
			}

			state, err := platform.NewKeyState()
			if err != nil {
				return fmt.Errorf("failed to open key state: %w", err)
			}
			defer state.Close()

			readings, err := platform.Snapshot(state, keys)
			if err != nil {
				return err
			}
			printReadings(cmd.OutOrStdout(), readings)

			db, err := a.openDB(record)
			if err != nil {
				return err
			}
			if db == nil {
				return nil
			}
			defer db.Close()
			return db.SaveSamples(samplesFromReadings(readings, "cli"))
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "store the readings in the sample database")
	return cmd
}

func (a *app) resolveKeys(args []string) ([]keycode.KeyCode, error) {
	if len(args) == 0 {
		return a.cfg.QueryKeys()
	}

	keys := make([]keycode.KeyCode, 0, len(args))
	for _, arg := range args {
		k, err := keycode.Parse(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func printReadings(w io.Writer, readings []platform.Reading) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range readings {
		state := "released"
		if r.Pressed {
			state = "pressed"
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Key.Name(), state)
	}
	tw.Flush()
}

func samplesFromReadings(readings []platform.Reading, source string) []*storage.Sample {
	samples := make([]*storage.Sample, 0, len(readings))
	for _, r := range readings {
		code, _ := platform.NativeCode(r.Key)
		samples = append(samples, &storage.Sample{
			Timestamp:  r.Time,
			KeyName:    r.Key.Name(),
			NativeCode: code,
			Platform:   runtime.GOOS,
			Pressed:    r.Pressed,
			Source:     source,
		})
	}
	return samples
}

func (a *app) newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List key names and their native codes on this platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printNames(cmd.OutOrStdout())
			return nil
		},
	}
}

func printNames(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tNATIVE")
	for _, k := range keycode.All() {
		native := "-"
		if code, ok := platform.NativeCode(k); ok {
			native = fmt.Sprintf("0x%04x", code)
		}
		fmt.Fprintf(tw, "%s\t%s\n", k.Name(), native)
	}
	tw.Flush()
}

func (a *app) newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve key state queries over HTTP and WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Web.Enabled {
				return errWebDisabled
			}
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Web.Port
			}

			state, err := platform.NewKeyState()
			if err != nil {
				return fmt.Errorf("failed to open key state: %w", err)
			}
			defer state.Close()

			db, err := a.openDB(false)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			return web.NewServer(state, db, port).Start(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	return cmd
}

func (a *app) newHistoryCmd() *cobra.Command {
	var limit int
	var key string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded samples, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(true)
			if err != nil {
				return err
			}
			defer db.Close()

			var samples []storage.Sample
			if key != "" {
				k, err := keycode.Parse(key)
				if err != nil {
					return err
				}
				samples, err = db.GetSamplesForKey(k.Name(), limit)
				if err != nil {
					return err
				}
			} else {
				samples, err = db.GetSamples(limit, 0)
				if err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tKEY\tPRESSED\tSOURCE")
			for _, s := range samples {
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", s.Timestamp.Local().Format(time.DateTime), s.KeyName, s.Pressed, s.Source)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of samples to show")
	cmd.Flags().StringVar(&key, "key", "", "only show samples of this key")
	return cmd
}

func (a *app) newStatsCmd() *cobra.Command {
	var days int
	var prune bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded samples per key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must not be negative, got: %d", days)
			}

			db, err := a.openDB(true)
			if err != nil {
				return err
			}
			defer db.Close()

			if prune {
				removed, err := db.DeleteSamplesBefore(time.Now().AddDate(0, 0, -days))
				if err != nil {
					return err
				}
				slog.Info("Pruned samples", "removed", removed, "olderThanDays", days)
			}

			overall, err := db.GetOverallStats(days)
			if err != nil {
				return err
			}
			keys, err := db.GetKeyStats(days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Last %d days: %d samples, %d pressed, %d keys\n",
				days, overall.TotalSamples, overall.PressedCount, overall.DistinctKeys)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tSAMPLES\tPRESSED\tLAST PRESSED")
			for _, ks := range keys {
				last := "-"
				if ks.LastPressed != nil {
					last = ks.LastPressed.Local().Format(time.DateTime)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", ks.KeyName, ks.TotalSamples, ks.PressedCount, last)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "number of days to summarize")
	cmd.Flags().BoolVar(&prune, "prune", false, "delete samples older than --days first")
	return cmd
}
