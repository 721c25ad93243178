package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/customer-analytics-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          ____          _                              _                _       _   _          
         / ___|   _ ___| |_ ___  _ __ ___   ___ _ __  / \   _ __   __ _| |_   _| |_(_) ___ ___ 
        | |  | | | / __| __/ _ \| '_ ' _ \ / _ \ '__|/ _ \ | '_ \ / _' | | | | | __| |/ __/ __|
        | |__| |_| \__ \ || (_) | | | | | |  __/ |  / ___ \| | | | (_| | | |_| | |_| | (__\__ \
         \____\__,_|___/\__\___/|_| |_| |_|\___|_| /_/   \_\_| |_|\__,_|_|\__, |\__|_|\___|___/
                                                                          |___/                
        `
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(magenta(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Customer Analytics Dashboard CLI (v%s)", formattedVersion)))
}
