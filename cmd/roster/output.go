package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

// outputPerson prints a single person in the configured format.
func outputPerson(cmd *cobra.Command, person *roster.Person) error {
	if outputJSON {
		return outputAsJSON(cmd, person)
	}
	return outputPersonHuman(cmd, person)
}

// outputAsJSON writes any value as formatted JSON to the command's stdout.
func outputAsJSON(cmd *cobra.Command, v interface{}) error {
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputPersonHuman prints a person in human-readable format.
func outputPersonHuman(cmd *cobra.Command, person *roster.Person) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:    %s\n", person.ID)
	fmt.Fprintf(out, "Name:  %s\n", person.Name)
	fmt.Fprintf(out, "Email: %s\n", person.Email)
	fmt.Fprintf(out, "Phone: %s\n", person.PhoneNumber)
	return nil
}

// outputPeople prints a listing in the configured format.
func outputPeople(cmd *cobra.Command, people []roster.Person) error {
	if outputJSON {
		return outputAsJSON(cmd, people)
	}

	out := cmd.OutOrStdout()
	if len(people) == 0 {
		fmt.Fprintln(out, "No people found.")
		return nil
	}

	for _, p := range people {
		fmt.Fprintf(out, "%s  %-24s %-28s %s\n", p.ID, p.Name, p.Email, p.PhoneNumber)
	}
	fmt.Fprintf(out, "\n%d people\n", len(people))
	return nil
}

// outputText prints text to the command's stdout.
func outputText(cmd *cobra.Command, format string, args ...interface{}) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, format, args...)
}

// outputError prints an error to stderr.
func outputError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}
