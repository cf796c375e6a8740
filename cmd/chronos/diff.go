package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pachecot/chronos"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Print the calendar Period between two dates",
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().String("start", "", "start date (YYYY-MM-DD), required")
	diffCmd.Flags().String("end", "", "end date (YYYY-MM-DD), required")
	_ = diffCmd.MarkFlagRequired("start")
	_ = diffCmd.MarkFlagRequired("end")
}

func runDiff(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	startStr, _ := flags.GetString("start")
	endStr, _ := flags.GetString("end")

	fields := logrus.Fields{"start": startStr, "end": endStr}
	log.WithFields(fields).Debug("diff: starting")

	start, err := parseDate(startStr)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("diff: failed to parse start date")
		return err
	}
	end, err := parseDate(endStr)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("diff: failed to parse end date")
		return err
	}

	period, err := chronos.PeriodBetween(start, end)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("diff: failed to compute period")
		return fmt.Errorf("chronos diff: %w", err)
	}

	log.WithFields(fields).WithField("result", period.String()).Debug("diff: resolved")
	fmt.Fprintln(cmd.OutOrStdout(), period)
	return nil
}
