package domain

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

type LeaveType string

const (
	LeaveVacation LeaveType = "VACATION"
	LeaveSick     LeaveType = "SICK"
	LeaveEarned   LeaveType = "EARNED"
)

var LeaveTypes = []LeaveType{LeaveVacation, LeaveSick, LeaveEarned}

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveVacation, LeaveSick, LeaveEarned:
		return true
	}
	return false
}

type TimeLogType string

const (
	TimeLogWork  TimeLogType = "WORK"
	TimeLogLeave TimeLogType = "LEAVE"
	TimeLogBreak TimeLogType = "BREAK"
)

func (t TimeLogType) Valid() bool {
	switch t {
	case TimeLogWork, TimeLogLeave, TimeLogBreak:
		return true
	}
	return false
}
