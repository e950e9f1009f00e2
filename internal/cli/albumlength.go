package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stridelabs/albumwalk/internal/adapters/spotify"
	"github.com/stridelabs/albumwalk/internal/core/domain"
)

var albumLengthName string

var albumLengthCmd = &cobra.Command{
	Use:   "album-length",
	Short: "Print an album's track list and total duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.SpotifyClientID == "" || cfg.SpotifyClientSecret == "" {
			return fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required")
		}

		albumName := albumLengthName
		if albumName == "" {
			albumName = prompt("Please enter your album name")
		}

		authClient := spotify.NewAuthenticatedHTTPClient(cmd.Context(), cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		catalog := spotify.NewClient(authClient, "", logger)

		album, err := catalog.LookupAlbum(cmd.Context(), albumName, "")
		if err != nil {
			return err
		}

		tracks, err := catalog.ListAlbumTracks(cmd.Context(), album.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Album name: %s\n", album.Name)
		for i, t := range tracks {
			fmt.Printf("%d Song name: %s\n", i+1, t.Name)
		}

		label, err := domain.FormatDuration(album.DurationMs)
		if err != nil {
			return err
		}
		fmt.Printf("Album Duration: %s\n", label)
		return nil
	},
}

func init() {
	albumLengthCmd.Flags().StringVar(&albumLengthName, "album_name", "", "album to look up")
	rootCmd.AddCommand(albumLengthCmd)
}
