package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"accel-sim/controller"
	"accel-sim/utils"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "config/scenario.yaml", "path to scenario.yaml")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	logLevel := flag.String("level", "info", "log level: debug, info, warn, error")
	seed := flag.Uint64("seed", 0, "random seed override (0 = use config, or time-seeded)")
	flag.Parse()

	// ── Logger ───────────────────────────────────────────────────────
	utils.InitLogger(*logLevel, *logFile)
	defer utils.Sync()

	utils.L().Infof("accel-sim · accelerometer measurement synthesizer (pid=%d)", os.Getpid())

	// ── Load config ──────────────────────────────────────────────────
	cfg, err := utils.LoadScenarioConfig(*configPath)
	if err != nil {
		utils.L().Fatalf("load scenario config: %v", err)
	}

	// Resolve relative base_dir to absolute.
	if !filepath.IsAbs(cfg.Output.BaseDir) {
		if abs, err := filepath.Abs(cfg.Output.BaseDir); err == nil {
			cfg.Output.BaseDir = abs
		}
	}

	// ── Simulate ─────────────────────────────────────────────────────
	simCtrl := controller.NewSimulationController(cfg)
	if err := simCtrl.Run(*seed); err != nil {
		utils.L().Fatalf("simulation: %v", err)
	}

	// ── Record ───────────────────────────────────────────────────────
	recCtrl, err := controller.NewRecordingController(cfg.Output)
	if err != nil {
		utils.L().Fatalf("init recording controller: %v", err)
	}
	if err := recCtrl.Write(simCtrl.Traj, simCtrl.Result); err != nil {
		utils.L().Fatalf("write session: %v", err)
	}

	fmt.Println("\n✓ accel-sim finished. Dataset at:", recCtrl.SessionDir())
}
