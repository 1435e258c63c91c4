package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/user/cinetheque/internal/config"
	"github.com/user/cinetheque/internal/repository"
	"github.com/user/cinetheque/internal/service"
)

func main() {
	kind := flag.String("kind", "", "导入种类: films | actors | directors")
	file := flag.String("file", "", "CSV 文件路径（; 分隔，首行为表头）")
	flag.Parse()

	if *kind == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "用法: ingest -kind {films|actors|directors} -file <path>")
		os.Exit(2)
	}

	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	cfg := config.Load()

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	repos := repository.NewRepositories(db)

	resolver := service.NewResolver(repos.Person, repos.Actor, repos.Director, repos.Film)
	persons := service.NewPersonReconciler(repos.Person, resolver)
	importer := service.NewImporter(
		service.NewFilmExtractor(repos.Film, repos.Country, repos.Genre, resolver),
		service.NewActorExtractor(repos.Actor, persons, resolver),
		service.NewDirectorExtractor(repos.Director, persons, resolver),
		repos.ImportRun,
	)

	report, err := importer.Run(*kind, *file)
	if err != nil {
		// 源级失败：整个运行中止，行级失败不会走到这里
		log.Fatalf("导入中止: %v", err)
	}

	fmt.Printf("文件: %s\n种类: %s\n读取: %d 行\n新建: %d\n复用/跳过: %d\n失败: %d\n",
		report.File, report.Kind, report.RowsRead, report.Created, report.Reused, report.Failed)
	for _, e := range report.Errors {
		fmt.Printf("  失败行 %s: %s\n", e.Row, e.Reason)
	}
}
