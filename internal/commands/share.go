package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/codec"
)

func newShareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a shareable link carrying the full state in its fragment",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			link, err := codec.ShareURL(e.cfg.Share.BaseURL, e.store.Properties)
			if err != nil {
				return err
			}

			fmt.Println(link)
			return nil
		},
	}

	return cmd
}
