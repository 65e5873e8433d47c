package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sgc-cli/sgc/internal/utils"
	"github.com/sgc-cli/sgc/pkg/chart"
	"github.com/sgc-cli/sgc/pkg/steam"
	"github.com/sgc-cli/sgc/pkg/whttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// compareCmd resolves each supplied profile and charts the games the
// group owns in common. With no arguments it prompts interactively.
var compareCmd = &cobra.Command{
	Use:   "compare [profile ...]",
	Short: "Compare the game collections of two or more Steam profiles",
	Long: `Compare the game collections of two or more Steam profiles.

Profiles can be given as arguments or entered interactively. Each one
is either a full profile URL (https://steamcommunity.com/id/<name> or
https://steamcommunity.com/profiles/<id64>) or a bare identifier, in
which case both URL forms are probed.`,
	Run: func(cmd *cobra.Command, args []string) {
		proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
		client, err := whttp.NewClient(proxy, viper.GetInt("http.retries"))
		if err != nil {
			utils.Log.Fatal("Invalid proxy: ", err)
		}

		resolver := steam.NewResolver(&steam.HTTPFetcher{
			Client:    client,
			UserAgent: viper.GetString("http.user_agent"),
		})
		if base := viper.GetString("steam.base_url"); base != "" {
			resolver.BaseURL = base
		}

		agg := steam.NewAggregator()
		ctx := context.Background()

		if len(args) > 0 {
			for _, raw := range args {
				if !resolveOne(ctx, resolver, agg, raw) {
					os.Exit(1)
				}
			}
			if len(agg.Players()) < 2 {
				utils.Log.Fatal("Two or more players are required for comparison")
			}
		} else {
			promptForProfiles(ctx, resolver, agg)
			if len(agg.Players()) < 2 {
				utils.Log.Fatal("Two or more players are required for comparison")
			}
		}

		own, err := agg.CommonGames()
		if errors.Is(err, steam.ErrNoOverlap) {
			fmt.Printf("No games in common, despite the group owning %d games!\n", agg.Catalog().Len())
			fmt.Println("No chart created.")
			return
		}

		if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
			chart.Write(os.Stdout, agg, own)
			return
		}

		dir, _ := cmd.Flags().GetString("output")
		if dir == "" {
			dir = viper.GetString("output.dir")
		}
		path, err := chart.WriteFile(dir, agg, own)
		if err != nil {
			utils.Log.Fatal("Failed to write chart: ", err)
		}
		fmt.Printf("The comparison chart has been written to '%s'.\n", path)
	},
}

// promptForProfiles drives the interactive input loop. The loop owns
// all retry decisions: a failed identifier is reported and the user is
// prompted again, while the core itself never retries.
func promptForProfiles(ctx context.Context, resolver *steam.Resolver, agg *steam.Aggregator) {
	fmt.Println("Enter the URL of each Steam profile to be compared.")
	fmt.Println("(ex. 'https://steamcommunity.com/id/profilename' or 'https://steamcommunity.com/profiles/76561197960287930')")
	fmt.Println("Enter an empty line when finished.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("URL #%d: ", len(agg.Players())+1)
		if !scanner.Scan() {
			break
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			// We need two or more valid players to compare
			if len(agg.Players()) > 1 {
				break
			}
			fmt.Println("ERROR: Two or more players are required for comparison.")
			continue
		}

		resolveOne(ctx, resolver, agg, raw)
	}
}

// resolveOne resolves a single identifier and folds a successful
// profile into the aggregator. Every failure kind gets its own
// message, since the remediation differs per kind.
func resolveOne(ctx context.Context, resolver *steam.Resolver, agg *steam.Aggregator, raw string) bool {
	outcome, err := resolver.Resolve(ctx, raw)
	if err != nil {
		var transportErr *steam.TransportError
		var nameErr *steam.NameExtractionError
		var gamesErr *steam.GameListExtractionError
		switch {
		case errors.As(err, &transportErr):
			fmt.Println("ERROR: Could not reach the profile page: " + transportErr.Error())
		case errors.As(err, &nameErr):
			fmt.Println("ERROR: Could not retrieve the player's name.")
		case errors.As(err, &gamesErr):
			fmt.Println("ERROR: Could not retrieve the player's games.")
		default:
			fmt.Println("ERROR: " + err.Error())
		}
		utils.Log.Debug("Resolution of ", raw, " failed: ", err)
		return false
	}

	switch outcome.Kind {
	case steam.KindResolved:
		agg.AddPlayer(outcome.Profile)
		fmt.Printf("Successfully accessed profile for %s.\n", outcome.Profile.Name)
		return true
	case steam.KindAccessRestricted:
		fmt.Println("ERROR: Profile appears to be private.")
	case steam.KindNotFound:
		fmt.Println("ERROR: Profile not found (neither public nor private).")
	case steam.KindAmbiguous:
		fmt.Printf("ERROR: Identifier matches %d different profiles; enter the full profile URL instead.\n", outcome.Matches)
	case steam.KindMalformed:
		fmt.Println("ERROR: URL format not valid/recognized!")
	}
	return false
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().BoolP("stdout", "s", false, "Print the chart to stdout instead of writing a file")
	compareCmd.Flags().StringP("output", "o", "", "Directory for chart files (defaults to 'output.dir' from config)")
}
