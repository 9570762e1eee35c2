package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/qnkhuat/blockterm/pkg"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/gui"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/qnkhuat/blockterm/pkg/score"
)

var (
	ui *gui.GUI

	modeFlag     string
	scoresPath   string
	storeFlag    string
	nicknameFlag string
	seed         int64
	fps          int
	startMatrix  string
	logPath      string
	logLevel     string
	debugAddress string
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if ui != nil {
				ui.Stop()
			}
			time.Sleep(100 * time.Millisecond)

			fmt.Fprintln(os.Stderr)
			debug.PrintStack()
			fmt.Fprintln(os.Stderr)

			log.Fatalf("panic: %+v", r)
		}
	}()

	flag.StringVar(&modeFlag, "mode", game.ModeClassic.Key(), "initial mode: classic, time_attack or marathon")
	flag.StringVar(&scoresPath, "scores", "high_scores.json", "path to best score storage")
	flag.StringVar(&storeFlag, "store", string(score.BackendJSON), "best score storage backend: json or sqlite")
	flag.StringVar(&nicknameFlag, "nick", "", "nickname")
	flag.Int64Var(&seed, "seed", 0, "piece generator seed (0 uses the current time)")
	flag.IntVar(&fps, "fps", gui.DefaultFPS, "frames per second")
	flag.StringVar(&startMatrix, "matrix", "", "pre-fill matrix with garbage at x,y,x,y,...")
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.StringVar(&logLevel, "log-level", "info", "log level")
	flag.StringVar(&debugAddress, "debug-address", "", "address to serve debug info")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start blockterm: non-interactive terminals are not supported")
	}

	mode, err := game.ParseMode(modeFlag)
	if err != nil {
		log.Fatal(err)
	}
	backend, err := score.ParseBackend(storeFlag)
	if err != nil {
		log.Fatal(err)
	}
	preset, err := parseMatrix(startMatrix)
	if err != nil {
		log.Fatal(err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	nickname := pkg.Nickname(nicknameFlag)

	logFile, err := pkg.InitLog(logPath, logLevel, "blockterm")
	if err != nil {
		log.Fatalf("failed to initialize logging: %s", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if debugAddress != "" {
		go func() {
			log.Fatal(http.ListenAndServe(debugAddress, nil))
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := score.Open(ctx, backend, scoresPath)
	if err != nil {
		fatalf("failed to open score store: %s", err)
	}
	defer store.Close()

	scores, err := store.Load(ctx)
	if err != nil {
		log.WithError(err).Warn("using default best scores")
	}

	g := game.NewGame(game.Config{
		Mode:      mode,
		Generator: mino.NewRandomGenerator(seed),
		Logger:    log.WithField("nick", nickname),
		Preset:    preset,
	})

	ui = gui.New(gui.Config{
		Game:     g,
		Scores:   scores,
		Nickname: nickname,
		FPS:      fps,
		Logger:   log.StandardLogger(),
		Seed:     seed,
	})

	log.WithFields(log.Fields{"mode": mode, "seed": seed, "store": backend}).Info("starting")

	if err := ui.Run(ctx); err != nil {
		fatalf("failed to run application: %s", err)
	}

	r, ok, newBest := ui.Record()

	if err := store.Save(context.Background(), scores); err != nil {
		log.WithError(err).Error("failed to save best scores")
		fmt.Fprintf(os.Stderr, "failed to save best scores: %s\n", err)
	}

	if ok {
		printSummary(r, newBest, scores.Best(r.Mode.Key()))
	}
}

// fatalf reports to stderr as well, since the log may be discarded.
func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	log.Fatalf(format, args...)
}

func printSummary(r game.Result, newBest bool, best int) {
	label := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("%s %s\n", label("Mode: "), r.Mode.Policy().Title)
	fmt.Printf("%s %s\n", label("Score:"), gui.FormatScore(r.Score))
	fmt.Printf("%s %d\n", label("Lines:"), r.Lines)

	if r.Won {
		color.Green("You win!")
	}
	if newBest {
		color.Green("New best!")
	} else {
		fmt.Printf("%s %s\n", label("Best: "), gui.FormatScore(best))
	}
}
