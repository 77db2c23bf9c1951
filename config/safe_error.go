package config

// SafeErrorMessage 根据运行模式决定返回给客户端的错误信息
// release 模式下只返回 fallback，不暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	// 开发环境返回完整错误，便于排查
	return err.Error()
}
