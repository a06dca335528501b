// 手动导入初始资源目录脚本
//
// 资源条目由管理侧离线维护，主应用本身不提供资源写入接口。
// 此脚本用于首次部署时填充一批起始资源，目录非空时不做任何写入。
//
// 用法: go run scripts/seed_resources.go

package main

import (
	"log"
	"os"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"learnpath_backend/pkg/database"
	"learnpath_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	// 首次部署时表可能尚未建立，导入前确保结构就绪
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, true)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var count int64
	if err := db.Model(&model.Resource{}).Count(&count).Error; err != nil {
		log.Fatalf("查询资源数量失败: %v", err)
	}
	if count > 0 {
		log.Printf("资源目录非空（%d 条），跳过导入", count)
		return
	}

	seed := []model.Resource{
		{
			Title:            "Python for Everybody",
			Description:      "University of Michigan introduction to programming with Python.",
			Type:             model.TypeCourse,
			Difficulty:       model.DifficultyBeginner,
			TopicTags:        model.StringList{"python", "programming basics"},
			URL:              "https://www.py4e.com/",
			EstimatedMinutes: 1200,
		},
		{
			Title:            "Automate the Boring Stuff with Python",
			Description:      "Practical programming for total beginners.",
			Type:             model.TypeBook,
			Difficulty:       model.DifficultyBeginner,
			TopicTags:        model.StringList{"python", "automation"},
			URL:              "https://automatetheboringstuff.com/",
			EstimatedMinutes: 900,
		},
		{
			Title:            "Fluent Python",
			Description:      "Clear, concise, and effective programming for intermediate Python developers.",
			Type:             model.TypeBook,
			Difficulty:       model.DifficultyAdvanced,
			TopicTags:        model.StringList{"python"},
			URL:              "https://www.oreilly.com/library/view/fluent-python-2nd/9781492056348/",
			EstimatedMinutes: 1800,
		},
		{
			Title:            "The Modern JavaScript Tutorial",
			Description:      "From the basics to advanced topics with simple, detailed explanations.",
			Type:             model.TypeTutorial,
			Difficulty:       model.DifficultyAll,
			TopicTags:        model.StringList{"javascript", "web development"},
			URL:              "https://javascript.info/",
			EstimatedMinutes: 2400,
		},
		{
			Title:            "CS50: Introduction to Computer Science",
			Description:      "Harvard's introduction to the intellectual enterprises of computer science.",
			Type:             model.TypeCourse,
			Difficulty:       model.DifficultyBeginner,
			TopicTags:        model.StringList{"computer science", "c", "programming basics"},
			URL:              "https://cs50.harvard.edu/x/",
			EstimatedMinutes: 5400,
		},
		{
			Title:            "A Tour of Go",
			Description:      "Interactive introduction to the Go programming language.",
			Type:             model.TypeTutorial,
			Difficulty:       model.DifficultyBeginner,
			TopicTags:        model.StringList{"go", "programming basics"},
			URL:              "https://go.dev/tour/",
			EstimatedMinutes: 240,
		},
		{
			Title:            "SQL for Data Analysis",
			Description:      "Querying and analyzing data with SQL.",
			Type:             model.TypeCourse,
			Difficulty:       model.DifficultyIntermediate,
			TopicTags:        model.StringList{"sql", "data analysis", "databases"},
			URL:              "https://mode.com/sql-tutorial/",
			EstimatedMinutes: 600,
		},
		{
			Title:            "Machine Learning Crash Course",
			Description:      "Google's fast-paced, practical introduction to machine learning.",
			Type:             model.TypeCourse,
			Difficulty:       model.DifficultyIntermediate,
			TopicTags:        model.StringList{"machine learning", "python", "data science"},
			URL:              "https://developers.google.com/machine-learning/crash-course",
			EstimatedMinutes: 900,
		},
		{
			Title:            "React Official Tutorial",
			Description:      "Learn React by building a tic-tac-toe game.",
			Type:             model.TypeTutorial,
			Difficulty:       model.DifficultyBeginner,
			TopicTags:        model.StringList{"react", "javascript", "web development"},
			URL:              "https://react.dev/learn",
			EstimatedMinutes: 300,
		},
		{
			Title:            "Designing Data-Intensive Applications",
			Description:      "The big ideas behind reliable, scalable, and maintainable systems.",
			Type:             model.TypeBook,
			Difficulty:       model.DifficultyAdvanced,
			TopicTags:        model.StringList{"databases", "distributed systems", "system design"},
			URL:              "https://dataintensive.net/",
			EstimatedMinutes: 2100,
		},
	}

	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			log.Fatalf("导入资源失败 (%s): %v", seed[i].Title, err)
		}
	}

	log.Printf("完成！共导入 %d 条资源", len(seed))
}
