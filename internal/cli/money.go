package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <code> <from> <to> <amount>",
		Short: "Transfer money between bank and players",
		Long: `Transfer money within a room. <from> and <to> are player ids, or the
literal "bank" to pay from or into the bank.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, from, to := args[0], args[1], args[2]

			amount, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[3])
			}

			req := map[string]any{"from": from, "to": to, "amount": amount}
			var result RoomResult

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/transfer", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newParkingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parking",
		Short: "Free Parking pot commands",
	}

	cmd.AddCommand(newParkingPayCmd())
	cmd.AddCommand(newParkingCollectCmd())

	return cmd
}

func newParkingPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <code> <player-id> <amount>",
		Short: "Pay into the Free Parking pot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, playerID := args[0], args[1]

			amount, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[2])
			}

			req := map[string]any{"playerId": playerID, "amount": amount}
			var result RoomResult

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/parking/pay", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newParkingCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect <code> <player-id>",
		Short: "Collect the Free Parking pot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, playerID := args[0], args[1]

			req := map[string]string{"playerId": playerID}
			var result RoomResult

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/parking/collect", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
