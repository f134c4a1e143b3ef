// Command gunsim runs the gun simulation against a scripted controller and
// prints what happened.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/headless"
	"github.com/automoto/gamepad-gun/logging"
	"github.com/automoto/gamepad-gun/scenes"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	modeStyles = map[config.BulletMode]lipgloss.Style{
		config.BulletRed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)),
		config.BulletBlue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
	}
)

func main() {
	scriptPath := flag.String("script", "", "YAML input script (required)")
	configPath := flag.String("config", "", "Config file (JSON, YAML or TOML)")
	logLevel := flag.String("log", "", "Log level (debug, info, warn, error)")
	tickRate := flag.Int("tps", 0, "Ticks per second (0 = as fast as possible)")
	ticks := flag.Int("ticks", 0, "Ticks to run (0 = length of the script)")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		config.Log.Level = *logLevel
	}
	session := logging.Setup(config.Log.Level, nil)

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	script, err := controller.LoadScript(*scriptPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load script")
	}

	n := *ticks
	if n <= 0 {
		n = script.Ticks()
	}
	players := 1
	if ids := script.SlotIDs(); len(ids) > 0 {
		players = slices.Max(ids) + 1
	}

	sim := scenes.NewSimulation(script.Source(), players)
	rec := headless.NewRecorder(sim)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := headless.NewLoop(sim, *tickRate).Run(ctx, n); err != nil {
		log.Warn().Err(err).Msg("Simulation interrupted")
	}

	fmt.Println(render(session, rec.Report()))
}

// render formats a report for the terminal.
func render(session string, rep headless.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gunsim") + " " + session + "\n")
	fmt.Fprintf(&b, "%s %d  %s %s  %s %d\n",
		labelStyle.Render("ticks"), rep.Ticks,
		labelStyle.Render("elapsed"), rep.Elapsed,
		labelStyle.Render("live projectiles"), rep.Projectiles)

	for _, s := range rep.Slots {
		var lines []string
		lines = append(lines,
			titleStyle.Render(fmt.Sprintf("Slot %d", s.Slot)),
			fmt.Sprintf("%s %d (%d trigger)", labelStyle.Render("shots"), s.Shots, s.AutoShots),
			fmt.Sprintf("%s %d  %s %d", labelStyle.Render("sounds"), s.Sounds, labelStyle.Render("rumbles"), s.Pulses),
			fmt.Sprintf("%s %s", labelStyle.Render("mode"), modeStyles[s.Mode].Render(s.Mode.String())),
			fmt.Sprintf("%s %v  %s %v", labelStyle.Render("vibration"), s.Vibration, labelStyle.Render("sound"), s.Sound),
			fmt.Sprintf("%s %d  %s %d  %s %d",
				labelStyle.Render("mode changes"), s.ModeChanges,
				labelStyle.Render("toggles"), s.ToggleChanges,
				labelStyle.Render("disconnects"), s.Disconnects),
			fmt.Sprintf("%s (%.2f, %.2f, %.2f) yaw %.2f", labelStyle.Render("pose"),
				s.Pose.Position.X(), s.Pose.Position.Y(), s.Pose.Position.Z(), s.Pose.Yaw),
		)
		b.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
		b.WriteString("\n")
	}
	return b.String()
}
