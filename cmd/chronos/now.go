package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pachecot/chronos"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current time in a zone",
	RunE:  runNow,
}

func init() {
	nowCmd.Flags().String("zone", "", "zone id (default from config, falling back to UTC)")
}

func runNow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	zoneID, err := cmd.Flags().GetString("zone")
	if err != nil {
		return err
	}
	if zoneID == "" {
		zoneID = cfg.DefaultZone
	}

	log.WithField("zone", zoneID).Debug("now: resolving zone")
	zone, err := chronos.NewZoneProvider().GetZone(zoneID)
	if err != nil {
		log.WithError(err).WithField("zone", zoneID).Error("now: failed to resolve zone")
		return fmt.Errorf("chronos now: %w", err)
	}

	clock := chronos.NewZonedClock(chronos.SystemClock{}, zone)
	out := formatZonedDateTime(clock.Now(), cfg.Layout)
	log.WithFields(logrus.Fields{"zone": zoneID, "result": out}).Debug("now: resolved")
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
