package service

import (
	"sort"
	"time"
)

// CurrentStreak 根据完成时间计算截至 now 的连续完成天数。
// 同一天的多条记录只计一个"已完成天"；最近一次完成在今天或昨天都视为未中断，
// 超过 1 天的空档终止计数；晚于 now 的记录忽略。连续天数只用于展示，
// 异常输入一律返回 0。
func CurrentStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	days := dedupDays(dates)

	cursor := dayOf(now)
	streak := 0
	for _, day := range days {
		gap := daysBetween(cursor, day)
		// now 之后的记录不参与计数，否则会把游标推向未来虚增连续天数
		if gap < 0 {
			continue
		}
		if gap > 1 {
			break
		}
		streak++
		cursor = day
	}
	return streak
}

// dedupDays 将时间戳归一化到日历日，去重后按降序返回
func dedupDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := dayOf(d)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// dayOf 丢弃时分秒，归一化到 UTC 零点，保证整天差值不受夏令时影响
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween 计算 a 与 b 之间的整天数
func daysBetween(a, b time.Time) int {
	return int(a.Sub(b).Hours() / 24)
}
