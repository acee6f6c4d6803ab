// Package cmd implements the command-line interface for coursex.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/coursex-bot/coursex/bot"
	"github.com/coursex-bot/coursex/color"
	"github.com/coursex-bot/coursex/constant"
	"github.com/coursex-bot/coursex/icon"
	"github.com/coursex-bot/coursex/key"
	"github.com/coursex-bot/coursex/log"
	"github.com/coursex-bot/coursex/style"
	"github.com/coursex-bot/coursex/util"
	"github.com/coursex-bot/coursex/version"
	"github.com/coursex-bot/coursex/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("token", "t", "", "Telegram bot token (overrides configuration)")

	rootCmd.Flags().String("api-url", "", "Override the catalog API base URL")
	lo.Must0(viper.BindPFlag(key.APIBaseURL, rootCmd.Flags().Lookup("api-url")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the coursex application.
var rootCmd = &cobra.Command{
	Use:   constant.Coursex,
	Short: "A Telegram bot that extracts course content into shareable text reports",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A Telegram bot that extracts course content into shareable text reports"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := bot.Options{
			Token: lo.Must(cmd.Flags().GetString("token")),
		}
		handleErr(bot.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
