package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgatlas/orgatlas/client"
)

func newOrgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage organizations",
	}
	cmd.AddCommand(orgCreateCmd())
	cmd.AddCommand(orgGetCmd())
	cmd.AddCommand(orgGetByNameCmd())
	cmd.AddCommand(orgUpdateCmd())
	cmd.AddCommand(orgDeleteCmd())
	cmd.AddCommand(orgListCmd())
	cmd.AddCommand(orgByBuildingCmd())
	cmd.AddCommand(orgByCategoryCmd())
	cmd.AddCommand(orgFindRadiusCmd())
	cmd.AddCommand(orgFindBBoxCmd())
	return cmd
}

func parseIDList(s string) []int64 {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			fatal("parse id list", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func orgCreateCmd() *cobra.Command {
	var buildingID int64
	var phoneIDs, categoryIDs string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an organization",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			org, err := apiClient.Organizations.Create(context.Background(), &client.CreateOrganizationRequest{
				Name:                args[0],
				BuildingID:          buildingID,
				PhoneNumberIDs:      parseIDList(phoneIDs),
				BusinessCategoryIDs: parseIDList(categoryIDs),
			})
			if err != nil {
				fatal("create organization", err)
			}
			output(org, strconv.FormatInt(org.ID, 10))
		},
	}
	cmd.Flags().Int64Var(&buildingID, "building", 0, "Building ID")
	cmd.Flags().StringVar(&phoneIDs, "phones", "", "Comma-separated phone number IDs")
	cmd.Flags().StringVar(&categoryIDs, "categories", "", "Comma-separated category IDs")
	cmd.MarkFlagRequired("building") //nolint:errcheck
	return cmd
}

func orgGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an organization by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			org, err := apiClient.Organizations.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get organization", err)
			}
			output(org, strconv.FormatInt(org.ID, 10))
		},
	}
}

func orgGetByNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-by-name <name>",
		Short: "Get an organization by exact name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			org, err := apiClient.Organizations.GetByName(context.Background(), args[0])
			if err != nil {
				fatal("get organization by name", err)
			}
			output(org, strconv.FormatInt(org.ID, 10))
		},
	}
}

func orgUpdateCmd() *cobra.Command {
	var name string
	var buildingID int64
	var phoneIDs, categoryIDs string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an organization",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateOrganizationRequest{}
			if name != "" {
				req.Name = &name
			}
			if cmd.Flags().Changed("building") {
				req.BuildingID = &buildingID
			}
			if cmd.Flags().Changed("phones") {
				ids := parseIDList(phoneIDs)
				if ids == nil {
					ids = []int64{}
				}
				req.PhoneNumberIDs = &ids
			}
			if cmd.Flags().Changed("categories") {
				ids := parseIDList(categoryIDs)
				if ids == nil {
					ids = []int64{}
				}
				req.BusinessCategoryIDs = &ids
			}
			org, err := apiClient.Organizations.Update(context.Background(), parseIDArg(args[0]), req)
			if err != nil {
				fatal("update organization", err)
			}
			output(org, strconv.FormatInt(org.ID, 10))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Organization name")
	cmd.Flags().Int64Var(&buildingID, "building", 0, "Building ID")
	cmd.Flags().StringVar(&phoneIDs, "phones", "", "Comma-separated phone number IDs (replaces the full set)")
	cmd.Flags().StringVar(&categoryIDs, "categories", "", "Comma-separated category IDs (replaces the full set)")
	return cmd
}

func orgDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an organization",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Organizations.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete organization", err)
			}
			fmt.Println("deleted")
		},
	}
}

func orgListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Run: func(cmd *cobra.Command, args []string) {
			orgs, err := apiClient.Organizations.List(context.Background(), &client.ListOptions{
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				fatal("list organizations", err)
			}
			printOrgs(orgs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	return cmd
}

func orgByBuildingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-building <building_id>",
		Short: "List organizations in a building",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			orgs, err := apiClient.Organizations.ListByBuilding(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("list organizations by building", err)
			}
			printOrgs(orgs)
		},
	}
}

func orgByCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-category <path>",
		Short: "Find organizations by category path (includes descendants)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			orgs, err := apiClient.Organizations.FindByCategory(context.Background(), args[0])
			if err != nil {
				fatal("find organizations by category", err)
			}
			printOrgs(orgs)
		},
	}
}

func orgFindRadiusCmd() *cobra.Command {
	var lon, lat, radius float64
	cmd := &cobra.Command{
		Use:   "find-radius",
		Short: "Find organizations within a radius of a point",
		Run: func(cmd *cobra.Command, args []string) {
			orgs, err := apiClient.Organizations.FindInRadius(context.Background(), &client.RadiusQuery{
				Center:       client.NewCoordinate(lon, lat),
				RadiusMeters: radius,
			})
			if err != nil {
				fatal("radius search", err)
			}
			printOrgs(orgs)
		},
	}
	cmd.Flags().Float64Var(&lon, "lon", 0, "Center longitude")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Center latitude")
	cmd.Flags().Float64Var(&radius, "radius", 0, "Radius in meters (default 100)")
	cmd.MarkFlagRequired("lon") //nolint:errcheck
	cmd.MarkFlagRequired("lat") //nolint:errcheck
	return cmd
}

func orgFindBBoxCmd() *cobra.Command {
	var tlLon, tlLat, brLon, brLat float64
	cmd := &cobra.Command{
		Use:   "find-bbox",
		Short: "Find organizations inside a rectangular area",
		Run: func(cmd *cobra.Command, args []string) {
			orgs, err := apiClient.Organizations.FindInBBox(context.Background(), &client.BBoxQuery{
				TopLeft:     client.NewCoordinate(tlLon, tlLat),
				BottomRight: client.NewCoordinate(brLon, brLat),
			})
			if err != nil {
				fatal("bbox search", err)
			}
			printOrgs(orgs)
		},
	}
	cmd.Flags().Float64Var(&tlLon, "tl-lon", 0, "Top-left longitude")
	cmd.Flags().Float64Var(&tlLat, "tl-lat", 0, "Top-left latitude")
	cmd.Flags().Float64Var(&brLon, "br-lon", 0, "Bottom-right longitude")
	cmd.Flags().Float64Var(&brLat, "br-lat", 0, "Bottom-right latitude")
	cmd.MarkFlagRequired("tl-lon") //nolint:errcheck
	cmd.MarkFlagRequired("tl-lat") //nolint:errcheck
	cmd.MarkFlagRequired("br-lon") //nolint:errcheck
	cmd.MarkFlagRequired("br-lat") //nolint:errcheck
	return cmd
}

func printOrgs(orgs []client.Organization) {
	if flagFmt == "table" {
		rows := make([][]string, 0, len(orgs))
		for _, o := range orgs {
			paths := make([]string, 0, len(o.BusinessCategories))
			for _, cat := range o.BusinessCategories {
				paths = append(paths, cat.Path)
			}
			rows = append(rows, []string{
				strconv.FormatInt(o.ID, 10),
				o.Name,
				strconv.FormatInt(o.BuildingID, 10),
				strconv.Itoa(len(o.PhoneNumbers)),
				strings.Join(paths, ","),
			})
		}
		formatTable([]string{"ID", "NAME", "BUILDING", "PHONES", "CATEGORIES"}, rows)
		return
	}
	output(orgs, "")
}
