package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/query"
)

type listOptions struct {
	search     string
	status     string
	priorities []string
	owners     []string
	types      []string
	dueFrom    string
	dueTo      string
	sort       string
	order      string
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks matching a search, filters and sort",
		Example: `  taskctl list --search test
  taskctl list --status pending --priority High,Critical
  taskctl list --sort dueDate --order desc --due-from 2024-07-25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.query()
			if err != nil {
				return err
			}
			svc, err := root.loadService()
			if err != nil {
				return err
			}

			tasks := svc.ListTasks(q)
			if root.asJSON {
				return printJSON(cmd.OutOrStdout(), tasks)
			}
			if len(tasks) == 0 {
				cmd.Println("No tasks match.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTasks(tasks))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.search, "search", "s", "", "case-insensitive text search")
	f.StringVar(&opts.status, "status", "all", "status tab: all, pending, in progress, overdue, completed, cancelled")
	f.StringSliceVar(&opts.priorities, "priority", nil, "priorities to include")
	f.StringSliceVar(&opts.owners, "owner", nil, "owners to include")
	f.StringSliceVar(&opts.types, "type", nil, "task types to include")
	f.StringVar(&opts.dueFrom, "due-from", "", "earliest due date (inclusive)")
	f.StringVar(&opts.dueTo, "due-to", "", "latest due date (inclusive)")
	f.StringVar(&opts.sort, "sort", string(query.DefaultSort.Field), "sort column: customerName, taskId, title, status, priority, dueDate")
	f.StringVar(&opts.order, "order", string(query.DefaultSort.Order), "sort order: asc or desc")
	return cmd
}

func (o *listOptions) query() (query.Query, error) {
	status, ok := query.ParseStatusCategory(o.status)
	if !ok {
		return query.Query{}, fmt.Errorf("unknown status %q", o.status)
	}

	priorities := make([]models.TaskPriority, 0, len(o.priorities))
	for _, p := range o.priorities {
		priority := models.TaskPriority(strings.TrimSpace(p))
		if !priority.Valid() {
			return query.Query{}, fmt.Errorf("unknown priority %q", p)
		}
		priorities = append(priorities, priority)
	}

	sort := query.Sort{Field: query.SortField(o.sort), Order: query.SortOrder(o.order)}
	if !sort.Field.Valid() {
		return query.Query{}, fmt.Errorf("unknown sort column %q", o.sort)
	}
	if !sort.Order.Valid() {
		return query.Query{}, fmt.Errorf("unknown sort order %q", o.order)
	}

	return query.Query{
		Search: o.search,
		Status: status,
		Filters: query.AdvancedFilters{
			Priorities: priorities,
			Owners:     o.owners,
			Types:      o.types,
			DateRange:  query.DateRange{Start: o.dueFrom, End: o.dueTo},
		},
		Sort: sort,
	}, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	statusColors = map[models.TaskStatus]lipgloss.Color{
		models.TaskStatusPending:    lipgloss.Color("214"),
		models.TaskStatusInProgress: lipgloss.Color("39"),
		models.TaskStatusOverdue:    lipgloss.Color("196"),
		models.TaskStatusCompleted:  lipgloss.Color("42"),
		models.TaskStatusCancelled:  lipgloss.Color("245"),
	}
)

const statusColumn = 3

func renderTasks(tasks []models.Task) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CUSTOMER", "TASK ID", "TITLE", "STATUS", "PRIORITY", "TYPE", "OWNER", "DUE")

	for _, task := range tasks {
		t.Row(task.CustomerName, task.TaskID, task.Title, string(task.Status),
			string(task.Priority), task.Type, task.Owner, task.DueDate)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == statusColumn && row >= 0 && row < len(tasks) {
			if color, ok := statusColors[tasks[row].Status]; ok {
				return cellStyle.Foreground(color)
			}
		}
		return cellStyle
	})

	return t.String()
}
