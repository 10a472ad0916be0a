package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leon37/DevLink/internal/config"
	"github.com/leon37/DevLink/internal/infrastructure/github"
)

// 手动冒烟测试：go run ./cmd/test_github <username>
func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	log.Println("配置加载成功")

	username := "octocat"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}

	client := github.NewClient(conf.GitHub.BaseURL, conf.GitHub.ClientID, conf.GitHub.ClientSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	repos, err := client.ListRepos(ctx, username)
	if err != nil {
		log.Fatalf("拉取仓库失败: %v", err)
	}

	for _, repo := range repos {
		fmt.Printf("%-30s ★%-5d %s\n", repo.Name, repo.Stargazers, repo.HTMLURL)
	}
}
