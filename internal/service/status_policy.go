package service

import "github.com/f1store-next/internal/constants"

// StatusPolicy 订单状态校验策略。
// 当前策略只做成员校验，不限制状态之间的迁移方向；
// 如需状态机（如禁止 Delivered → Pending），替换实现即可。
type StatusPolicy interface {
	// Validate 校验从 from 到 to 的状态变更是否允许
	Validate(from, to string) error
}

// MembershipStatusPolicy 仅校验目标状态是否为已知状态
type MembershipStatusPolicy struct{}

// NewMembershipStatusPolicy 创建成员校验策略
func NewMembershipStatusPolicy() *MembershipStatusPolicy {
	return &MembershipStatusPolicy{}
}

// Validate 目标状态不在已知状态集合内时拒绝（区分大小写）
func (MembershipStatusPolicy) Validate(_, to string) error {
	for _, status := range constants.OrderStatuses {
		if status == to {
			return nil
		}
	}
	return ErrOrderStatusInvalid
}
