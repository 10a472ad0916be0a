package model

// ProfileUpdate 档案的部分更新
// 指针为 nil 表示"请求里没带这个字段"，和"带了空值要清掉"是两回事
type ProfileUpdate struct {
	Company        *string
	Website        *string
	Location       *string
	Status         *string
	Skills         *[]string
	Bio            *string
	GithubUsername *string
	Social         *Social
}
