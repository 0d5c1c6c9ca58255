// taskctl is a small terminal client for the task API. It covers the same
// flows as the web app's pages: sign up, log in, the task list and the
// dashboard summary.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Pritish2005/task-management-app/internal/client"
	"github.com/Pritish2005/task-management-app/internal/domain"
	"github.com/Pritish2005/task-management-app/internal/dto"
	"github.com/Pritish2005/task-management-app/internal/stats"
)

var (
	serverURL string
	token     string
)

func main() {
	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Terminal client for the task management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", envOr("TASKCTL_SERVER", "http://localhost:5000"), "API base URL")
	root.PersistentFlags().StringVar(&token, "token", os.Getenv("TASKCTL_TOKEN"), "bearer token (from register/login)")

	root.AddCommand(registerCmd(), loginCmd(), taskCmd(), dashboardCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func api() *client.Client {
	c := client.New(serverURL)
	if token != "" {
		c.SetToken(token)
	}
	return c
}

func registerCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print a bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := api()
			if err := c.Register(cmd.Context(), name, email, password); err != nil {
				return err
			}
			fmt.Println(c.Token())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := api()
			if err := c.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Println(c.Token())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(taskListCmd(), taskAddCmd(), taskUpdateCmd(), taskDoneCmd(), taskRmCmd())
	return cmd
}

func taskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks ordered by start time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := api().Tasks(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("no tasks")
				return nil
			}
			for _, t := range list {
				fmt.Printf("%d\tP%d\t%-8s\t%s — %s\t%s\n",
					t.ID, t.Priority, t.Status,
					t.StartTime.Local().Format("2006-01-02 15:04"),
					t.EndTime.Local().Format("2006-01-02 15:04"),
					t.Title)
			}
			return nil
		},
	}
}

func taskAddCmd() *cobra.Command {
	var title, start, end string
	var priority int
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startT, err := parseTime(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endT, err := parseTime(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			t, err := api().CreateTask(cmd.Context(), dto.CreateTaskRequest{
				Title: title, StartTime: startT, EndTime: endT, Priority: priority,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created task %d\n", t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&start, "start", "", "start time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().IntVar(&priority, "priority", 3, "priority 1-5")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func taskUpdateCmd() *cobra.Command {
	var title, start, end string
	var priority int
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a task's title, times and priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			startT, err := parseTime(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endT, err := parseTime(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			t, err := api().UpdateTask(cmd.Context(), id, dto.UpdateTaskRequest{
				Title: title, StartTime: startT, EndTime: endT, Priority: priority,
			})
			if err != nil {
				return err
			}
			fmt.Printf("updated task %d\n", t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&start, "start", "", "start time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().IntVar(&priority, "priority", 3, "priority 1-5")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func taskDoneCmd() *cobra.Command {
	var reopen bool
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task finished (or pending again with --reopen)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			status := domain.StatusFinished
			if reopen {
				status = domain.StatusPending
			}
			t, err := api().SetStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			fmt.Printf("task %d is now %s\n", t.ID, t.Status)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reopen, "reopen", false, "set status back to pending")
	return cmd
}

func taskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			t, err := api().DeleteTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("deleted task %d (%s)\n", t.ID, t.Title)
			return nil
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregate task statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := api().Dashboard(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			printSummary(s)
			return nil
		},
	}
}

func printSummary(s stats.Summary) {
	fmt.Printf("total tasks:          %d\n", s.TotalTasks)
	fmt.Printf("completed:            %d%%\n", s.CompletedPercentage)
	fmt.Printf("pending:              %d%%\n", s.PendingPercentage)
	fmt.Printf("avg completion time:  %.1fh\n", s.AvgCompletionTime)
	fmt.Println()
	fmt.Println("priority  pending  lapsed(h)  to finish(h)")
	for p := 1; p <= stats.Priorities; p++ {
		b := s.ByPriority[p]
		fmt.Printf("%8d  %7d  %9.1f  %12.1f\n", p, b.PendingTasks, b.TimeLapsed, b.TimeToFinish)
	}
	fmt.Println()
	fmt.Printf("total lapsed:     %.1fh\n", s.TotalTimeLapsed)
	fmt.Printf("total to finish:  %.1fh\n", s.TotalTimeToFinish)
}

func parseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", raw)
	}
	return id, nil
}

// parseTime accepts RFC3339, a local datetime, or a bare date (midnight UTC).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("use RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD")
}
