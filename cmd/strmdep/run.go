package main

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"

	depletion "github.com/Longitude103/stream-depletion"
	"github.com/Longitude103/stream-depletion/prep"
)

func runScenario(cfgFP, outFP string) error {
	tt := mmio.NewTimer()

	cfg, err := prep.LoadConfig(cfgFP)
	if err != nil {
		return err
	}
	m, p, err := cfg.Build()
	if err != nil {
		return err
	}
	sched, start, err := prep.LoadSchedule(cfg.ScheduleCSV)
	if err != nil {
		return err
	}
	tt.Lap("inputs loaded")

	horizon := cfg.HorizonMonths
	if horizon <= 0 {
		horizon = len(sched.Q)
	}
	r, err := depletion.Compute(m, p, sched, horizon, cfg.PeriodDays)
	if err != nil {
		return err
	}
	tt.Lap("depletion computed")

	prep.WriteResult(outFP, start, cfg.PeriodDays, r)
	if err := prep.WriteSummary(mmio.RemoveExtension(outFP)+".txt", p, r); err != nil {
		log.Printf("summary not written: %v", err)
	}
	tt.Print("complete")
	return nil
}

func runMonthly(cfgFP, outFP string) error {
	tt := mmio.NewTimer()

	cfg, err := prep.LoadConfig(cfgFP)
	if err != nil {
		return err
	}
	m, p, err := cfg.Build()
	if err != nil {
		return err
	}
	vols, err := prep.LoadVolumeSchedule(cfg.ScheduleCSV)
	if err != nil {
		return err
	}
	tt.Lap("inputs loaded")

	horizon := cfg.HorizonMonths
	if horizon <= 0 {
		horizon = 12 * len(vols)
	}
	md, err := depletion.ComputeMonthly(m, p, vols, horizon, cfg.PeriodDays)
	if err != nil {
		return err
	}
	tt.Lap("depletion computed")

	prep.WriteMonthly(outFP, md)
	tt.Print("complete")
	return nil
}

func printMethods() {
	fmt.Println("glover           Glover-Balmer, infinite aquifer")
	fmt.Println("alluvial         Glover with one image well per boundary")
	fmt.Println("alluvial-series  alternating image-well series, single boundary")
	fmt.Println("sdf              Jenkins stream depletion factor (d2S/T or sdf_days)")
	fmt.Println("urf              tabulated unit response function")
}
