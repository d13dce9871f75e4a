package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orgatlas/orgatlas/client"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage business categories",
	}
	cmd.AddCommand(categoryCreateCmd())
	cmd.AddCommand(categoryGetCmd())
	cmd.AddCommand(categoryGetByPathCmd())
	cmd.AddCommand(categoryUpdateCmd())
	cmd.AddCommand(categoryDeleteCmd())
	cmd.AddCommand(categoryListCmd())
	return cmd
}

func categoryCreateCmd() *cobra.Command {
	var path, orgIDs string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a business category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat, err := apiClient.Categories.Create(context.Background(), &client.CreateCategoryRequest{
				Name:            args[0],
				Path:            path,
				OrganizationIDs: parseIDList(orgIDs),
			})
			if err != nil {
				fatal("create category", err)
			}
			output(cat, strconv.FormatInt(cat.ID, 10))
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "ltree path, e.g. food.fast (max 3 levels)")
	cmd.Flags().StringVar(&orgIDs, "orgs", "", "Comma-separated organization IDs")
	cmd.MarkFlagRequired("path") //nolint:errcheck
	return cmd
}

func categoryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a category by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat, err := apiClient.Categories.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get category", err)
			}
			output(cat, strconv.FormatInt(cat.ID, 10))
		},
	}
}

func categoryGetByPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-by-path <path>",
		Short: "Get a category by exact ltree path",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat, err := apiClient.Categories.GetByPath(context.Background(), args[0])
			if err != nil {
				fatal("get category by path", err)
			}
			output(cat, strconv.FormatInt(cat.ID, 10))
		},
	}
}

func categoryUpdateCmd() *cobra.Command {
	var name, path, orgIDs string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a business category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateCategoryRequest{}
			if name != "" {
				req.Name = &name
			}
			if path != "" {
				req.Path = &path
			}
			if cmd.Flags().Changed("orgs") {
				ids := parseIDList(orgIDs)
				if ids == nil {
					ids = []int64{}
				}
				req.OrganizationIDs = &ids
			}
			cat, err := apiClient.Categories.Update(context.Background(), parseIDArg(args[0]), req)
			if err != nil {
				fatal("update category", err)
			}
			output(cat, strconv.FormatInt(cat.ID, 10))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().StringVar(&path, "path", "", "ltree path")
	cmd.Flags().StringVar(&orgIDs, "orgs", "", "Comma-separated organization IDs (replaces the full set)")
	return cmd
}

func categoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a business category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Categories.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete category", err)
			}
			fmt.Println("deleted")
		},
	}
}

func categoryListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List business categories",
		Run: func(cmd *cobra.Command, args []string) {
			categories, err := apiClient.Categories.List(context.Background(), &client.ListOptions{
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				fatal("list categories", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(categories))
				for _, cat := range categories {
					rows = append(rows, []string{
						strconv.FormatInt(cat.ID, 10),
						cat.Name,
						cat.Path,
					})
				}
				formatTable([]string{"ID", "NAME", "PATH"}, rows)
				return
			}
			output(categories, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	return cmd
}
