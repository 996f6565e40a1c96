package conf

import (
	"encoding/json"
	"fmt"
	"github.com/donething/utils-go/dofile"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"sync"
)

const (
	// Name 配置文件的名字
	Name = "ht-pics-go.json"

	// HandlerToLocal HandlerToTG 在 worker 中对数据的处理方法
	HandlerToLocal = "ToLocal" // 保存到本地
	HandlerToTG    = "ToTG"    // 发送到 Telegram
)

// 可在环境变量或 .env 中覆盖的配置
const (
	EnvProxy     = "HT_PROXY"
	EnvLocalRoot = "HT_LOCAL_ROOT"
	EnvTGToken   = "HT_TG_TOKEN"
	EnvTGChatID  = "HT_TG_CHAT_ID"
)

var (
	// Conf 配置的实例
	Conf Config
	Mu   sync.Mutex

	// 配置文件所在的路径
	confPath = Name
)

// Gallery 下载的目标图集
type Gallery struct {
	ID   int  `json:"id"`
	Done bool `json:"done"` // 已成功完成
}

type Config struct {
	// 工作池的容量
	WorkerCount int `json:"worker_count"`

	// 对文件数据的处理，可从常量中选择 Handler***
	Handler string `json:"handler"`

	// 当 Handler 的值为 HandlerToLocal 时，保存文件到的本地目录
	LocalRoot string `json:"local_root"`

	// 使用代理，为空表示不使用代理
	Proxy string `json:"proxy"`

	// 不使用 webp 格式，下载原格式的图片
	NoWebp bool `json:"no_webp"`

	// 图片所在主机的域名
	Domain string `json:"domain"`

	// 默认的前端（子域名）数量
	Frontends int `json:"frontends"`

	// 每秒最多发出的请求数，不大于 0 表示不限制
	RatePerSec float64 `json:"rate_per_sec"`

	// 同一图集同时下载的图片数
	PageConcurrency int `json:"page_concurrency"`

	// 抓取的目标
	Galleries []Gallery `json:"galleries"`

	// Telegram 推送消息
	TG struct {
		NoToken       string `json:"no_token"`
		NoChatID      string `json:"no_chat_id"`
		PicSaveToken  string `json:"pic_save_token"`
		PicSaveChatID string `json:"pic_save_chat_id"`
	} `json:"tg"`
}

// Default 默认配置
func Default() Config {
	return Config{
		WorkerCount:     3,
		Handler:         HandlerToLocal,
		LocalRoot:       "pics",
		Domain:          "hitomi.la",
		Frontends:       3,
		RatePerSec:      5,
		PageConcurrency: 4,
		Galleries:       []Gallery{},
	}
}

// Load 读取配置文件，不存在时创建默认的配置文件。path 为空时使用 Name
func Load(path string) error {
	if path == "" {
		path = Name
	}

	if err := godotenv.Load(); err != nil {
		// 仅在 .env 不存在时提示，不中断流程
		fmt.Println("未找到 .env 文件，使用系统环境变量")
	}

	exist, err := dofile.Exists(path)
	if err != nil {
		return fmt.Errorf("判断配置文件'%s'是否存在时出错：%w", path, err)
	}

	Mu.Lock()
	defer Mu.Unlock()
	confPath = path
	Conf = Default()
	if exist {
		fmt.Printf("读取配置文件：%s\n", path)
		bs, err := dofile.Read(path)
		if err != nil {
			return fmt.Errorf("读取配置文件出错：%w", err)
		}
		if err = json.Unmarshal(bs, &Conf); err != nil {
			return fmt.Errorf("解析配置文件出错：%w", err)
		}
	} else {
		fmt.Printf("创建配置文件：%s\n", path)
		if err = saveFile(path); err != nil {
			return err
		}
	}

	applyEnv(&Conf)
	return nil
}

// Save 保存配置
func Save() error {
	Mu.Lock()
	defer Mu.Unlock()
	return saveFile(confPath)
}

// AddGalleries 添加下载的目标，已存在的会被忽略
func AddGalleries(ids []int) {
	Mu.Lock()
	defer Mu.Unlock()
	for _, id := range ids {
		if indexOf(id) < 0 {
			Conf.Galleries = append(Conf.Galleries, Gallery{ID: id})
		}
	}
}

// Pending 还未完成的图集 ID，按添加的顺序
func Pending() []int {
	Mu.Lock()
	defer Mu.Unlock()
	ids := make([]int, 0, len(Conf.Galleries))
	for _, g := range Conf.Galleries {
		if !g.Done {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

// MarkDone 标记图集已完成
func MarkDone(id string) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return
	}
	Mu.Lock()
	defer Mu.Unlock()
	if i := indexOf(n); i >= 0 {
		Conf.Galleries[i].Done = true
	}
}

// 调用前需持有 Mu
func indexOf(id int) int {
	for i, g := range Conf.Galleries {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func applyEnv(c *Config) {
	if v := os.Getenv(EnvProxy); v != "" {
		c.Proxy = v
	}
	if v := os.Getenv(EnvLocalRoot); v != "" {
		c.LocalRoot = v
	}
	if v := os.Getenv(EnvTGToken); v != "" {
		c.TG.PicSaveToken = v
	}
	if v := os.Getenv(EnvTGChatID); v != "" {
		c.TG.PicSaveChatID = v
	}
}

// 保存配置到文件
func saveFile(path string) error {
	bs, err := json.MarshalIndent(Conf, "", "  ")
	if err != nil {
		return fmt.Errorf("文本化配置出错：%w", err)
	}
	_, err = dofile.Write(bs, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("保存配置文件'%s'出错：%w", path, err)
	}
	return nil
}
