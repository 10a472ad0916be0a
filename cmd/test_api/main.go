package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// 手动冒烟测试：对着本地起好的服务走一遍 注册 -> 登录 -> 查当前用户
// go run ./cmd/test_api
func main() {
	base := "http://localhost:5000"
	client := &http.Client{Timeout: 10 * time.Second}

	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixMilli())

	// 1. 注册
	body, _ := json.Marshal(map[string]string{
		"name":     "Smoke Tester",
		"email":    email,
		"password": "123456",
	})
	resp, err := client.Post(base+"/api/users", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("注册请求失败: %v", err)
	}
	token := extractToken(resp)
	log.Printf("注册成功 email=%s", email)

	// 2. 登录
	body, _ = json.Marshal(map[string]string{
		"email":    email,
		"password": "123456",
	})
	resp, err = client.Post(base+"/api/auth", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("登录请求失败: %v", err)
	}
	token = extractToken(resp)
	log.Println("登录成功")

	// 3. 带 Token 查当前用户
	req, _ := http.NewRequest(http.MethodGet, base+"/api/auth", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = client.Do(req)
	if err != nil {
		log.Fatalf("查询当前用户失败: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	log.Printf("当前用户: %s", raw)
}

func extractToken(resp *http.Response) string {
	defer resp.Body.Close()
	var envelope struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Fatalf("解析响应失败: %v", err)
	}
	if resp.StatusCode != http.StatusOK || envelope.Code != 0 {
		log.Fatalf("请求失败: status=%d msg=%s", resp.StatusCode, envelope.Msg)
	}
	return envelope.Data.Token
}
