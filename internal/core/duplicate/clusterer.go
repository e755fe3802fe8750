/**
 * 重复服务聚类
 * @author: sun977
 * @date: 2026.02.11
 * @description: 对完成探测的注册表做进程名/指纹两个独立划分，成员资格是精确键相等
 */

package duplicate

import (
	"sort"

	"github.com/CrazyDubya/portsy/internal/core/model"
)

// FindDuplicates 找出疑似重复的服务组
// 两个划分互不排斥: 一个服务可以同时进入进程组和指纹组
// 序号在两个划分间单调递增，进程组在前；键按字典序遍历保证确定性
func FindDuplicates(registry model.Registry) []*model.DuplicateGroup {
	var groups []*model.DuplicateGroup
	seq := 0

	emit := func(criterion model.GroupCriterion, cells map[string][]*model.Service) {
		keys := make([]string, 0, len(cells))
		for k := range cells {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			members := cells[key]
			if len(members) < 2 {
				continue
			}
			seq++
			groups = append(groups, &model.DuplicateGroup{
				Criterion:     criterion,
				Discriminator: key,
				Sequence:      seq,
				Services:      members,
			})
		}
	}

	emit(model.CriterionProcess, ByProcess(registry))
	emit(model.CriterionFingerprint, ByFingerprint(registry))

	return groups
}

// ByProcess 按进程名划分注册表
// 纯函数，不过滤单成员格子，调用方决定哪些格子算"重复"
// 占位进程名的服务（保留下来的无归属端口）不参与这个划分
func ByProcess(registry model.Registry) map[string][]*model.Service {
	cells := make(map[string][]*model.Service)
	for _, svc := range registry.Services() {
		if svc.ProcessName == model.UnknownProcess {
			continue
		}
		cells[svc.ProcessName] = append(cells[svc.ProcessName], svc)
	}
	return cells
}

// ByFingerprint 按指纹划分注册表
// 没有指纹的服务（根路径探测失败）不参与这个划分
func ByFingerprint(registry model.Registry) map[string][]*model.Service {
	cells := make(map[string][]*model.Service)
	for _, svc := range registry.Services() {
		fp := svc.Fingerprint()
		if fp == "" {
			continue
		}
		cells[fp] = append(cells[fp], svc)
	}
	return cells
}
