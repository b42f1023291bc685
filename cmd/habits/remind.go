// Package main is the entry point for the habits application.
// This file contains the remind subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"habits/internal/notify"
	"habits/internal/state"
)

// remindHelpText is the help message for the remind subcommand.
const remindHelpText = `habits remind - Send a desktop reminder for unfinished habits

USAGE:
    habits remind [OPTIONS]

OPTIONS:
    --print        Print the reminder instead of sending a notification
    -h, --help     Show this help message

DESCRIPTION:
    Checks which habits have not been completed today and sends a
    desktop notification listing them. Does nothing when every habit
    is done or no habits are tracked. Intended to be run from cron
    or a systemd timer, e.g.:

        0 20 * * * habits remind

EXAMPLES:
    # Send a reminder notification
    habits remind

    # Print the reminder to stdout
    habits remind --print
`

// runRemind handles the "habits remind" subcommand.
func runRemind(args []string) {
	fs := flag.NewFlagSet("remind", flag.ExitOnError)

	printFlag := fs.Bool("print", false, "print the reminder instead of notifying")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, remindHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(remindHelpText)
		os.Exit(0)
	}

	store := loadStore()

	today := state.DateKey(store.Now())
	var pending []string
	for _, h := range store.State().Habits {
		if !h.Log[today] {
			pending = append(pending, h.Name)
		}
	}

	title, message, ok := notify.ReminderMessage(pending)
	if !ok {
		fmt.Println("All habits done for today. Nothing to remind.")
		return
	}

	if *printFlag {
		fmt.Printf("%s\n%s\n", title, message)
		return
	}

	notifier := notify.New()
	if !notifier.IsSupported() {
		fmt.Fprintln(os.Stderr, "Desktop notifications are not supported on this system.")
		fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
		os.Exit(1)
	}

	if err := notifier.Send(title, message); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending notification: %v\n", err)
		os.Exit(1)
	}
}
