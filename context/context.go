package context

import (
	"github.com/joykm/deque-bag-adt/config"
	"github.com/joykm/deque-bag-adt/timecounter"
)

type Context struct {
	Config      *config.Config
	TimeCounter *timecounter.DequeTimeCounter
}

func NewContext(iniPath string) (*Context, error) {
	// 读取配置文件
	conf, err := config.NewConfig(iniPath)
	if err != nil {
		return nil, err
	}
	return NewContextWithConfig(conf), nil
}

func NewContextWithConfig(conf *config.Config) *Context {
	return &Context{
		Config:      conf,
		TimeCounter: timecounter.NewDequeTimeCounter(),
	}
}
