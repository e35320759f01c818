package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet/pkg/core"
)

var (
	certTitle    string
	certDeadline string
	certStatus   string

	trainingTitle  string
	trainingURL    string
	trainingStatus string

	iotTitle   string
	iotEndDate string
	iotLink    string

	watchType string
	watchDate string
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage the 2 certification slots",
}

var certListCmd = &cobra.Command{
	Use:   "list",
	Short: "List certification slots",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		for _, c := range service.Snapshot().Certifications {
			fmt.Printf("%-8s %-16s %-12s %s\n", c.ID, c.Status, c.Deadline, c.Title)
		}
	},
}

var certSetCmd = &cobra.Command{
	Use:   "set [id]",
	Short: "Edit a certification slot (cert-1, cert-2)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		var upd core.CertificationUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &certTitle
		}
		if cmd.Flags().Changed("deadline") {
			upd.Deadline = &certDeadline
		}
		if cmd.Flags().Changed("status") {
			status := core.CertificationStatus(certStatus)
			upd.Status = &status
		}

		if !service.UpdateCertification(context.Background(), args[0], upd) {
			fmt.Fprintf(os.Stderr, "No certification slot %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Certification %s updated.\n", args[0])
	},
}

var trainingCmd = &cobra.Command{
	Use:   "training",
	Short: "Manage the 4 training slots",
}

var trainingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List training slots",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		for _, tr := range service.Snapshot().Trainings {
			fmt.Printf("%-8s %-10s %s\n", tr.ID, tr.Status, tr.Title)
		}
	},
}

var trainingSetCmd = &cobra.Command{
	Use:   "set [id]",
	Short: "Edit a training slot (train-1 .. train-4)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		var upd core.TrainingUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &trainingTitle
		}
		if cmd.Flags().Changed("url") {
			upd.PlatformURL = &trainingURL
		}
		if cmd.Flags().Changed("status") {
			status := core.TrainingStatus(trainingStatus)
			upd.Status = &status
		}

		if !service.UpdateTraining(context.Background(), args[0], upd) {
			fmt.Fprintf(os.Stderr, "No training slot %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Training %s updated.\n", args[0])
	},
}

var iotCmd = &cobra.Command{
	Use:   "iot",
	Short: "Manage the 2 IoT project slots",
}

var iotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List IoT project slots",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		for _, p := range service.Snapshot().IoTProjects {
			state := "en cours"
			if p.Done() {
				state = "terminé"
			}
			fmt.Printf("%-8s %-10s %s\n", p.ID, state, p.Title)
		}
	},
}

var iotSetCmd = &cobra.Command{
	Use:   "set [id]",
	Short: "Edit an IoT project slot (iot-1, iot-2)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		var upd core.IoTProjectUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &iotTitle
		}
		if cmd.Flags().Changed("end") {
			upd.EndDate = &iotEndDate
		}
		if cmd.Flags().Changed("link") {
			upd.LinkURL = &iotLink
		}

		if !service.UpdateIoTProject(context.Background(), args[0], upd) {
			fmt.Fprintf(os.Stderr, "No project slot %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Project %s updated.\n", args[0])
	},
}

var veilleCmd = &cobra.Command{
	Use:   "veille",
	Short: "Manage the tech-watch log",
}

var veilleAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Log a watched piece of content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		w := core.ActiveWatch{
			Title: args[0],
			Type:  core.WatchType(watchType),
			Date:  watchDate,
		}
		created, ok := service.AddActiveWatch(context.Background(), w)
		if !ok {
			fmt.Fprintln(os.Stderr, "A title is required")
			os.Exit(1)
		}
		fmt.Printf("Watch '%s' logged (%s).\n", created.Title, created.ID)
	},
}

var veilleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tech-watch log",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		for _, w := range service.Snapshot().ActiveWatches {
			fmt.Printf("%-14s %-11s %s  %s\n", w.ID, w.Type, w.Date, w.Title)
		}
	},
}

var veilleRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete a tech-watch entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.RemoveActiveWatch(context.Background(), args[0]) {
			fmt.Fprintf(os.Stderr, "No entry with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Entry %s removed.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(certCmd)
	certCmd.AddCommand(certListCmd)
	certCmd.AddCommand(certSetCmd)
	certSetCmd.Flags().StringVar(&certTitle, "title", "", "Certification title")
	certSetCmd.Flags().StringVar(&certDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	certSetCmd.Flags().StringVar(&certStatus, "status", "", "Status (À réaliser, En cours, Examen planifié, Réussie, Échouée)")

	rootCmd.AddCommand(trainingCmd)
	trainingCmd.AddCommand(trainingListCmd)
	trainingCmd.AddCommand(trainingSetCmd)
	trainingSetCmd.Flags().StringVar(&trainingTitle, "title", "", "Training title")
	trainingSetCmd.Flags().StringVar(&trainingURL, "url", "", "Platform URL")
	trainingSetCmd.Flags().StringVar(&trainingStatus, "status", "", "Status (À faire, En cours, Terminé)")

	rootCmd.AddCommand(iotCmd)
	iotCmd.AddCommand(iotListCmd)
	iotCmd.AddCommand(iotSetCmd)
	iotSetCmd.Flags().StringVar(&iotTitle, "title", "", "Project title")
	iotSetCmd.Flags().StringVar(&iotEndDate, "end", "", "End date (marks the project done)")
	iotSetCmd.Flags().StringVar(&iotLink, "link", "", "Project link")

	rootCmd.AddCommand(veilleCmd)
	veilleCmd.AddCommand(veilleAddCmd)
	veilleCmd.AddCommand(veilleListCmd)
	veilleCmd.AddCommand(veilleRemoveCmd)
	veilleAddCmd.Flags().StringVarP(&watchType, "type", "t", string(core.WatchVideo), "Content type (Vidéo, Podcast, Newsletter)")
	veilleAddCmd.Flags().StringVarP(&watchDate, "date", "d", "", "Date (defaults to today)")
}
