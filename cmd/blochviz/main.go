package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/theapemachine/blochviz"
	"github.com/theapemachine/errnie"
)

const usage = `commands:
  x | y | z | h | s | sd | t | td     apply a fixed gate
  rx | ry | rz <fraction>             rotate by fraction*PI, fraction in {±0.25, ±0.5, ±1, ±2}
  clear                               reset state and history
  history                             print the recorded gates
  metrics                             print session counters
  quit
`

func main() {
	frames := pflag.IntP("frames", "f", blochviz.NewConfig().FramesPerGate, "frames rendered per gate")
	maxOps := pflag.IntP("max-ops", "m", blochviz.NewConfig().MaxOperations, "operations allowed before input is disabled")
	fps := pflag.IntP("fps", "r", 0, "animation speed in frames per second, 0 prints frames at once")
	every := pflag.IntP("every", "e", 5, "print every nth frame")
	pflag.Parse()

	renderer := newTermRenderer(os.Stdout, *fps, *every)
	session := blochviz.NewSession(
		renderer,
		blochviz.WithFramesPerGate(*frames),
		blochviz.WithMaxOperations(*maxOps),
	)

	if err := run(session, renderer, os.Stdin); err != nil {
		errnie.Warn("blochviz exited: %v", err)
		os.Exit(1)
	}
}

func run(session *blochviz.Session, renderer *termRenderer, in io.Reader) error {
	fmt.Fprint(renderer.out, usage)
	scanner := bufio.NewScanner(in)

	for renderer.prompt(session); scanner.Scan(); renderer.prompt(session) {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd := strings.ToLower(fields[0]); cmd {
		case "quit", "exit":
			return nil
		case "clear":
			session.ClearSession()
		case "history":
			renderer.History(session.HistoryText())
		case "metrics":
			renderer.Metrics(session.Metrics().ExportMetrics())
		case "rx", "ry", "rz":
			if len(fields) < 2 {
				renderer.Error(fmt.Errorf("%s needs an angle fraction", cmd))
				continue
			}
			fraction, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				renderer.Error(err)
				continue
			}
			report(renderer, session.ApplyRotation(cmd, fraction))
		default:
			report(renderer, session.ApplyGate(cmd))
		}
	}

	return scanner.Err()
}

// report prints input errors; visualization failures already went through the renderer.
func report(renderer *termRenderer, err error) {
	if err == nil || errors.Is(err, blochviz.ErrVisualizationInfeasible) {
		return
	}
	renderer.Error(err)
}

func sleepFrame(fps int) {
	if fps > 0 {
		time.Sleep(time.Second / time.Duration(fps))
	}
}
