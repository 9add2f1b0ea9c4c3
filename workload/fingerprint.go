package workload

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// FingerprintGroup 用一组带种子的 xxhash 计算渲染结果的指纹
type FingerprintGroup struct {
	HashFunc  []*xxhash.Digest // 保存哈希函数
	Key       string           // 保存 HashFunc 的计算对象
	HashValue []uint64         // 保存 HashFunc 的计算结果
	Seeds     []uint64
}

func NewFingerprintGroup(num int) *FingerprintGroup {
	hashFunc := make([]*xxhash.Digest, num)
	seeds := make([]uint64, num)
	for i := 0; i < num; i++ {
		hashFunc[i] = xxhash.NewWithSeed(uint64(i))
		seeds[i] = uint64(i)
	}
	return &FingerprintGroup{
		HashFunc: hashFunc,
		Seeds:    seeds,
	}
}

func (g *FingerprintGroup) ResetWithSeed() {
	for i, hashFunc := range g.HashFunc {
		hashFunc.ResetWithSeed(g.Seeds[i])
	}
}

// Write 计算 key 的全部哈希值，与上一次 key 相同时直接返回缓存
func (g *FingerprintGroup) Write(key string) []uint64 {
	if g.HashValue != nil && g.Key == key {
		return g.HashValue
	}
	g.Key = key
	g.ResetWithSeed()
	g.HashValue = make([]uint64, len(g.HashFunc))
	for i, hashFunc := range g.HashFunc {
		hashFunc.WriteString(key)
		g.HashValue[i] = hashFunc.Sum64()
	}
	return g.HashValue
}

// Sum 返回 s 渲染结果的指纹副本
func (g *FingerprintGroup) Sum(s fmt.Stringer) []uint64 {
	values := g.Write(s.String())
	res := make([]uint64, len(values))
	copy(res, values)
	return res
}

// Equal 比较两个对象渲染结果的全部指纹
func (g *FingerprintGroup) Equal(a, b fmt.Stringer) bool {
	fa := g.Sum(a)
	fb := g.Sum(b)
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}
	return true
}

// Fingerprint 单个无种子的指纹
func Fingerprint(s fmt.Stringer) uint64 {
	return xxhash.Sum64String(s.String())
}
