package activity

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Package is one raw sensor reading set.
type Package struct {
	Code string
	Data []float64
}

// DemoPackages are the reference readings run by the demo command.
var DemoPackages = []Package{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

type CLI struct {
	writer          io.Writer
	activityService *Service
	gatherer        prometheus.Gatherer
	addr            string
	args            []string
	logger          *slog.Logger
}

func NewCLI(w io.Writer, logger *slog.Logger, activityService *Service, gatherer prometheus.Gatherer, addr string, args []string) *CLI {
	return &CLI{
		writer:          w,
		activityService: activityService,
		gatherer:        gatherer,
		addr:            addr,
		args:            args,
		logger:          logger,
	}
}

func (c *CLI) Run(args []string) error {
	if len(args) == 0 {
		c.Usage()
		return nil
	}

	switch args[0] {
	case "demo":
		if err := c.Demo(DemoPackages); err != nil {
			return err
		}
	case "add":
		if err := c.AddWorkout(context.Background()); err != nil {
			return err
		}
	case "list":
		if err := c.List(context.Background()); err != nil {
			return err
		}
	case "api":
		if err := c.RunAPI(context.Background()); err != nil {
			return err
		}
	default:
		c.Usage()
	}
	return nil
}

func (c *CLI) Usage() {
	fmt.Fprintf(c.writer, "Usage: fittrack [command] [flags]\n--help show this message\n\n\tdemo\n\tadd --type %s --data 15000,1,75 [--gpx file]\n\tlist\n\tapi\n",
		strings.Join(Codes(), "|"))
}

// Demo prints the summary of each package in order. It stops at the first
// package that cannot be read.
func (c *CLI) Demo(packages []Package) error {
	for _, p := range packages {
		info, err := c.activityService.Summarise(p.Code, p.Data)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.writer, info.Message())
	}
	return nil
}

func (c *CLI) RunAPI(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	mux := NewAPI(c.logger, c.activityService, c.gatherer)

	server := &http.Server{
		Addr:    c.addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		c.logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			c.logger.Error("Error shutting down server", slog.Any("error", err))
		}
	}()

	c.logger.Info("Starting server", slog.String("addr", c.addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		c.logger.Error("Error starting server", slog.Any("error", err))
		cancel()
		return err
	}

	return nil
}

func (c *CLI) AddWorkout(ctx context.Context) error {
	fs := flag.NewFlagSet("fittrack", flag.ContinueOnError)
	fs.SetOutput(c.writer)
	var code, rawData, gpxFile string
	fs.StringVar(&code, "type", "", "workout code ("+strings.Join(Codes(), ", ")+")")
	fs.StringVar(&rawData, "data", "", "comma separated readings")
	fs.StringVar(&gpxFile, "gpx", "", "path to gpx file, overrides the duration reading")
	fs.Usage = c.Usage

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if code == "" || rawData == "" {
		fs.Usage()
		return fmt.Errorf("--type and --data are required")
	}

	data, err := parseReadings(rawData)
	if err != nil {
		return err
	}

	if gpxFile != "" {
		c.logger.Info("Reading duration from gpx", slog.String("gpx_file", gpxFile))

		hours, err := DurationFromGPXFile(gpxFile)
		if err != nil {
			return err
		}

		if len(data) < 2 {
			return &ArityError{Code: code, Want: 2, Got: len(data)}
		}
		data[1] = hours
	}

	w, err := c.activityService.Add(ctx, code, data)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.writer, w.Message)

	return nil
}

func (c *CLI) List(ctx context.Context) error {
	workouts, err := c.activityService.List(ctx)
	if err != nil {
		return err
	}

	for _, w := range workouts {
		fmt.Fprintf(c.writer, "%s %s\n", w.ID, w.Message)
	}

	return nil
}

func parseReadings(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	data := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing reading %q: %w", p, err)
		}
		data = append(data, v)
	}
	return data, nil
}
