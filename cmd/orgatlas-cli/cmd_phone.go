package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orgatlas/orgatlas/client"
)

func newPhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Manage phone numbers",
	}
	cmd.AddCommand(phoneCreateCmd())
	cmd.AddCommand(phoneGetCmd())
	cmd.AddCommand(phoneUpdateCmd())
	cmd.AddCommand(phoneDeleteCmd())
	cmd.AddCommand(phoneListCmd())
	return cmd
}

func phoneCreateCmd() *cobra.Command {
	var orgID int64
	var phoneType string
	cmd := &cobra.Command{
		Use:   "create <number>",
		Short: "Create a phone number",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			p, err := apiClient.Phones.Create(context.Background(), &client.CreatePhoneNumberRequest{
				Number:         args[0],
				PhoneType:      phoneType,
				OrganizationID: orgID,
			})
			if err != nil {
				fatal("create phone number", err)
			}
			output(p, strconv.FormatInt(p.ID, 10))
		},
	}
	cmd.Flags().Int64Var(&orgID, "org", 0, "Organization ID")
	cmd.Flags().StringVar(&phoneType, "type", "", "Phone type (defaults to main)")
	cmd.MarkFlagRequired("org") //nolint:errcheck
	return cmd
}

func phoneGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a phone number by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			p, err := apiClient.Phones.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get phone number", err)
			}
			output(p, strconv.FormatInt(p.ID, 10))
		},
	}
}

func phoneUpdateCmd() *cobra.Command {
	var number, phoneType string
	var orgID int64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a phone number",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdatePhoneNumberRequest{}
			if number != "" {
				req.Number = &number
			}
			if phoneType != "" {
				req.PhoneType = &phoneType
			}
			if cmd.Flags().Changed("org") {
				req.OrganizationID = &orgID
			}
			p, err := apiClient.Phones.Update(context.Background(), parseIDArg(args[0]), req)
			if err != nil {
				fatal("update phone number", err)
			}
			output(p, strconv.FormatInt(p.ID, 10))
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "Phone number")
	cmd.Flags().StringVar(&phoneType, "type", "", "Phone type")
	cmd.Flags().Int64Var(&orgID, "org", 0, "Organization ID (re-parents the number)")
	return cmd
}

func phoneDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a phone number",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Phones.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete phone number", err)
			}
			fmt.Println("deleted")
		},
	}
}

func phoneListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List phone numbers",
		Run: func(cmd *cobra.Command, args []string) {
			phones, err := apiClient.Phones.List(context.Background(), &client.ListOptions{
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				fatal("list phone numbers", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(phones))
				for _, p := range phones {
					rows = append(rows, []string{
						strconv.FormatInt(p.ID, 10),
						p.Number,
						p.PhoneType,
						strconv.FormatInt(p.OrganizationID, 10),
					})
				}
				formatTable([]string{"ID", "NUMBER", "TYPE", "ORG"}, rows)
				return
			}
			output(phones, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	return cmd
}
