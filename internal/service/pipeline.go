package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// RowError 行级失败记录：行标识字段 + 失败原因
type RowError struct {
	Row    string `json:"row"`
	Reason string `json:"reason"`
}

// Report 单个文件一次导入的运行报告
type Report struct {
	File     string     `json:"file"`
	Kind     string     `json:"kind"`
	RowsRead int        `json:"rows_read"`
	Created  int        `json:"created"`
	Reused   int        `json:"reused"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}

// outcome 一行对账后的归宿
type outcome int

const (
	outcomeCreated outcome = iota + 1
	outcomeReused
)

// rowHandler 对账一行原始记录；返回错误表示该行 Failed，
// 错误只计入报告，绝不中断后续行
type rowHandler func(line []string) (outcome, error)

// runCSV 单遍读取 `;` 分隔的 UTF-8 文本源并逐行驱动 handler。
// 首行是表头，直接丢弃。列数不足 minColumns 的行按 MalformedRow 计。
// 源级失败（文件打不开、分隔结构损坏）中止整个运行并只上报一次。
func runCSV(path, kind string, minColumns int, rowID func([]string) string, handle rowHandler) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开 CSV 文件: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // 列数不匹配按行处理，不让 reader 直接报错
	reader.LazyQuotes = true

	report := &Report{File: path, Kind: kind}

	// 表头行不读内容；空文件等同于零行输入，不算错误
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return report, nil
		}
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	for {
		line, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break // 输入结束是正常终态
		}
		if err != nil {
			return nil, fmt.Errorf("读取 CSV 失败: %w", err)
		}

		report.RowsRead++

		if len(line) < minColumns {
			report.recordFailure("第"+fmt.Sprint(report.RowsRead)+"行", ErrMalformedRow)
			continue
		}

		result, err := handle(line)
		if err != nil {
			report.recordFailure(rowID(line), err)
			continue
		}

		switch result {
		case outcomeCreated:
			report.Created++
		case outcomeReused:
			report.Reused++
		}
	}

	log.Printf("[导入] %s (%s): 读取 %d 行，新建 %d，复用/跳过 %d，失败 %d",
		path, kind, report.RowsRead, report.Created, report.Reused, report.Failed)

	return report, nil
}

// recordFailure 记录一行失败并继续
func (r *Report) recordFailure(rowID string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: rowID, Reason: err.Error()})
	log.Printf("[导入] 行处理失败 %s: %v", rowID, err)
}
