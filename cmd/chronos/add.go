package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pachecot/chronos"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a calendar period to a date",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().String("date", "", "date to add to (YYYY-MM-DD), required")
	_ = addCmd.MarkFlagRequired("date")
	addCmd.Flags().Int64("years", 0, "years to add")
	addCmd.Flags().Int64("months", 0, "months to add")
	addCmd.Flags().Int64("weeks", 0, "weeks to add")
	addCmd.Flags().Int64("days", 0, "days to add")
}

func runAdd(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	dateStr, _ := flags.GetString("date")
	years, _ := flags.GetInt64("years")
	months, _ := flags.GetInt64("months")
	weeks, _ := flags.GetInt64("weeks")
	days, _ := flags.GetInt64("days")

	fields := logrus.Fields{"date": dateStr, "years": years, "months": months, "weeks": weeks, "days": days}
	log.WithFields(fields).Debug("add: starting")

	date, err := parseDate(dateStr)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("add: failed to parse date")
		return err
	}

	period := chronos.Period{Years: years, Months: months, Weeks: weeks, Days: days}
	result, err := period.AddToLocalDate(date)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("add: failed to add period")
		return fmt.Errorf("chronos add: %w", err)
	}

	log.WithFields(fields).WithField("result", result.String()).Debug("add: resolved")
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
