package cmd

import (
	"context"
	"log"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/config"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/database"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/utils"
	"github.com/spf13/cobra"
)

// seedAdminCmd creates the first admin account. Registration over HTTP only
// produces employee accounts.
var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create an admin account",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		fullName, _ := cmd.Flags().GetString("name")
		if email == "" || password == "" || fullName == "" {
			log.Fatal("email, password and name are required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		mongoClient, err := database.NewMongoClient(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		userRepo := repository.NewUserRepo(mongoClient.Database(cfg.Database))

		hashed, err := utils.HashPassword(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		now := time.Now().Unix()
		user := &types.User{
			Email:    email,
			Password: hashed,
			FullName: fullName,
			Role:     types.USER_ROLE_ADMIN,
			Tasks:    []types.Task{},
			CreateAt: now,
			UpdateAt: now,
		}
		id, err := userRepo.CreateUser(context.Background(), user)
		if err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Admin account created: %s (%s)", email, id)
	},
}

func init() {
	rootCmd.AddCommand(seedAdminCmd)
	seedAdminCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	seedAdminCmd.Flags().String("email", "", "admin email")
	seedAdminCmd.Flags().String("password", "", "admin password")
	seedAdminCmd.Flags().String("name", "", "admin display name")
}
