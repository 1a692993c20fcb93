package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phylax/contracts/events"
)

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List event types and the topic each is routed to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range events.Types() {
				topic, _ := events.TopicFor(t)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, topic)
			}
			return nil
		},
	}
}

func eventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "event <type> [file|-]",
		Short: "Validate an event payload and print the envelope it would be published in",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			p, err := events.DecodePayload(events.EventType(args[0]), data)
			if err != nil {
				return reportInvalid(cmd, err)
			}
			evt, err := events.NewEvent(p)
			if err != nil {
				return reportInvalid(cmd, err)
			}
			out, err := json.MarshalIndent(evt, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
