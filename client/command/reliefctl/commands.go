package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitmark-inc/relief-api/client"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
)

const timeLayout = "2006-01-02 15:04:05"

var statusColors = map[schema.HelpStatus]*color.Color{
	schema.HelpPending:    color.New(color.FgYellow),
	schema.HelpInProgress: color.New(color.FgBlue),
	schema.HelpResolved:   color.New(color.FgGreen),
	schema.HelpCancelled:  color.New(color.FgRed),
}

// statusWidth is the length of the longest status name
var statusWidth = func() int {
	width := 0
	for _, s := range schema.HelpStatuses {
		if len(s) > width {
			width = len(s)
		}
	}
	return width
}()

// statusCell pads a status to width before coloring it. Escape codes are
// invisible but counted by tabwriter, so colored cells are only ever written
// as the last cell of a line.
func statusCell(s schema.HelpStatus, width int) string {
	padded := fmt.Sprintf("%-*s", width, s)
	if c, ok := statusColors[s]; ok {
		return c.Sprint(padded)
	}
	return padded
}

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func nextStatuses(s schema.HelpStatus, role schema.Role) string {
	if s.Terminal() {
		return "(closed)"
	}

	next := lifecycle.NextStatuses(s, role)
	if len(next) == 0 {
		return "-"
	}

	names := make([]string, 0, len(next))
	for _, n := range next {
		names = append(names, string(n))
	}
	return strings.Join(names, ",")
}

func renderHelps(out io.Writer, helps []schema.HelpRequest, role schema.Role) error {
	if len(helps) == 0 {
		_, err := fmt.Fprintln(out, "No help requests.")
		return err
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, "ID\tURGENCY\tTYPE\tLOCATION\tREQUESTER\tCREATED\tNEXT\tSTATUS")
	for _, h := range helps {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			h.ID, h.Urgency, h.Type, h.Location, h.RequesterID,
			h.CreatedAt.Local().Format(timeLayout),
			nextStatuses(h.Status, role),
			statusCell(h.Status, 0))
	}
	return w.Flush()
}

func renderHistory(out io.Writer, transitions []schema.HelpTransition) error {
	if len(transitions) == 0 {
		_, err := fmt.Fprintln(out, "No status changes yet.")
		return err
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, "TIME\tACTOR\tROLE\tTRANSITION")
	for _, t := range transitions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s -> %s\n",
			t.CreatedAt.Local().Format(timeLayout), t.ActorID, t.ActorRole,
			statusCell(t.From, statusWidth), statusCell(t.To, 0))
	}
	return w.Flush()
}

func renderSummary(out io.Writer, summary *lifecycle.Summary) error {
	fmt.Fprintf(out, "Total: %d  Average urgency: %.2f  Min: %d  Max: %d\n",
		summary.Total, summary.AverageUrgency, summary.MinUrgency, summary.MaxUrgency)

	w := newTabWriter(out)
	fmt.Fprintln(w, "\nCOUNT\tSTATUS")
	for _, s := range schema.HelpStatuses {
		fmt.Fprintf(w, "%d\t%s\n", summary.ByStatus[s], statusCell(s, 0))
	}

	fmt.Fprintln(w, "\nLOCATION\tMEAN URGENCY")
	writeMeans(w, summary.ByLocation)

	fmt.Fprintln(w, "\nTYPE\tMEAN URGENCY")
	writeMeans(w, summary.ByType)
	return w.Flush()
}

func writeMeans(w io.Writer, means map[string]float64) {
	keys := make([]string, 0, len(means))
	for k := range means {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%.2f\n", k, means[k])
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List help requests visible to the actor",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		statuses, _ := cmd.Flags().GetStringSlice("status")
		types, _ := cmd.Flags().GetStringSlice("type")
		requester, _ := cmd.Flags().GetString("requester")

		helps, err := c.ListHelps(client.ListOptions{
			RequesterID: requester,
			Statuses:    statuses,
			Types:       types,
		})
		if err != nil {
			return err
		}

		return renderHelps(cmd.OutOrStdout(), helps, c.Actor().Role)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "File a new help request",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		helpType, _ := cmd.Flags().GetString("type")
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")
		urgency, _ := cmd.Flags().GetInt("urgency")
		requester, _ := cmd.Flags().GetString("requester")

		help, err := c.CreateHelp(client.NewHelp{
			RequesterID: requester,
			Type:        helpType,
			Description: description,
			Location:    location,
			Urgency:     urgency,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created help request %s (%s)\n", help.ID, statusCell(help.Status, 0))
		return nil
	},
}

var transitionCmd = &cobra.Command{
	Use:   "transition <help-id> <status>",
	Short: "Move a help request to another status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		help, err := c.Transition(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Help request %s is now %s\n", help.ID, statusCell(help.Status, 0))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <help-id>",
	Short: "Show the status changes of a help request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		transitions, err := c.History(args[0])
		if err != nil {
			return err
		}

		return renderHistory(cmd.OutOrStdout(), transitions)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the severity report",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		summary, err := c.Severity()
		if err != nil {
			return err
		}

		return renderSummary(cmd.OutOrStdout(), summary)
	},
}

func init() {
	listCmd.Flags().StringSlice("status", nil, "only list these statuses")
	listCmd.Flags().StringSlice("type", nil, "only list these help types")
	listCmd.Flags().String("requester", "", "only list requests of this requester")

	createCmd.Flags().String("type", "", "help type, e.g. Food, Medical")
	createCmd.Flags().String("description", "", "what is needed")
	createCmd.Flags().String("location", "", "where help is needed")
	createCmd.Flags().Int("urgency", 3, "urgency from 1 to 5")
	createCmd.Flags().String("requester", "", "file on behalf of this requester")
}
