package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	startAlbumName   string
	startAddressFlag string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Generate a walking route for an album",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		albumName := startAlbumName
		if albumName == "" {
			albumName = prompt("Please enter your album name")
		}
		startAddress := startAddressFlag
		if startAddress == "" {
			startAddress = prompt("Please enter your starting address (blank for default)")
		}

		planner, err := buildPlanner(cmd.Context())
		if err != nil {
			return err
		}

		summary, err := planner.PlanTrip(cmd.Context(), albumName, startAddress, "")
		if err != nil {
			return err
		}

		fmt.Printf("Album: %s — %s\n", summary.Album.Name, summary.Album.Artist)
		if summary.Album.ReleaseYear > 0 {
			fmt.Printf("Released: %d (%d tracks)\n", summary.Album.ReleaseYear, summary.Album.TrackCount)
		}
		fmt.Printf("Duration: %s\n", summary.DurationLabel)
		fmt.Printf("Walking distance: %.2f km\n", summary.DistanceKm)
		fmt.Printf("Start: %s\n", summary.StartAddress)
		fmt.Printf("Route: %s\n", summary.MapsURL)
		return nil
	},
}

func prompt(label string) string {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	startCmd.Flags().StringVar(&startAlbumName, "album_name", "", "album to look up")
	startCmd.Flags().StringVar(&startAddressFlag, "start_address", "", "starting street address or \"lat,lon\"")
	rootCmd.AddCommand(startCmd)
}
